package tick

import "sync/atomic"

// debugLoggingEnabled gates hot-path debug logs of the tick-driven packages.
// Set via EnableDebugLogging() from main after parsing config.LogLevel.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables per-tick debug logging.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if per-tick debug logging is enabled.
// Use this to guard debug log calls inside the tick:
//
//	if tick.IsDebugEnabled() {
//	    slog.Debug("hero attack", "damage", dealt)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
