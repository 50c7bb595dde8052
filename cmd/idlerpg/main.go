package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/idlerpg/internal/config"
	"github.com/udisondev/idlerpg/internal/db"
	"github.com/udisondev/idlerpg/internal/game/combat"
	"github.com/udisondev/idlerpg/internal/game/session"
	"github.com/udisondev/idlerpg/internal/save"
	"github.com/udisondev/idlerpg/internal/tick"
)

// finalSaveTimeout bounds the synchronous save on shutdown.
const finalSaveTimeout = 5 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Config first: it decides the log level.
	cfgPath := config.PathFromEnv()
	cfg, err := config.LoadGame(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	tick.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("idlerpg starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"save_driver", cfg.Save.Driver,
		"slot", cfg.Save.Slot)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	slog.Info("rng seeded", "seed", seed)

	saver := save.NewSaver(store, cfg.Save.Slot)
	sess := session.New(session.Options{
		Rand:              rng,
		StartingZone:      cfg.StartingZone,
		InventoryCapacity: cfg.InventoryCapacity,
		Saver:             saver,
	})

	snap, err := save.LoadSnapshot(ctx, store, cfg.Save.Slot)
	switch {
	case err == nil:
		sess.Restore(snap)
	case errors.Is(err, save.ErrSlotEmpty):
		slog.Info("no saved game, starting fresh", "slot", cfg.Save.Slot)
	default:
		// Corrupted saves do not block the game; the next autosave replaces them.
		slog.Warn("saved game unreadable, starting fresh", "slot", cfg.Save.Slot, "error", err)
	}

	if tick.IsDebugEnabled() {
		sess.SetHitObserver(func(r combat.HitResult) {
			slog.Debug("hit",
				"attacker", r.Attacker,
				"damage", r.Damage,
				"crit", r.Crit,
				"blocked", r.Blocked,
				"killed", r.Killed)
		})
	}

	ticks := tick.NewManager(cfg.TickInterval)
	ticks.Register("session", sess)

	if cfg.AutoStart {
		sess.Start()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ticks.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("tick manager: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return saver.Run(gctx)
	})

	g.Go(func() error {
		every(gctx, cfg.AutosaveInterval, sess.Save)
		return nil
	})

	g.Go(func() error {
		every(gctx, cfg.StatusInterval, func() { logStatus(sess.Status()) })
		return nil
	})

	slog.Info("idlerpg running",
		"tick", cfg.TickInterval,
		"autosave", cfg.AutosaveInterval,
		"auto_start", cfg.AutoStart)

	if err := g.Wait(); err != nil {
		return err
	}

	// The saver has exited; write the final state synchronously.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalSaveTimeout)
	defer cancel()
	if err := save.SaveSnapshot(saveCtx, store, cfg.Save.Slot, sess.Snapshot()); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	logStatus(sess.Status())
	slog.Info("idlerpg stopped")
	return nil
}

// openStore builds the configured save store and its cleanup.
func openStore(ctx context.Context, cfg config.Game) (save.Store, func(), error) {
	switch cfg.Save.Driver {
	case config.DriverPostgres:
		dsn := cfg.Database.DSN()
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, dsn); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")
		return db.NewSaveRepository(database.Pool()), database.Close, nil

	default:
		if err := os.MkdirAll(cfg.Save.Dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating save dir %s: %w", cfg.Save.Dir, err)
		}
		return save.NewFileStore(cfg.Save.Dir), func() {}, nil
	}
}

// every calls fn on each interval until ctx is done.
func every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

func logStatus(st session.Status) {
	slog.Info("status",
		"state", st.State,
		"zone", st.Zone,
		"highest_zone", st.HighestZone,
		"level", st.Level,
		"hp", fmt.Sprintf("%.0f/%.0f", st.Health, st.MaxHealth),
		"gold", st.Gold,
		"souls", st.Souls,
		"kills", st.Kills,
		"items", st.Items,
		"enemy", st.Enemy)
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
