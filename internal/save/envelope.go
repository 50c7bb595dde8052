package save

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Version is the envelope format written by Encode.
const Version = 1

var (
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Envelope wraps a snapshot payload with a blake2b-256 checksum.
type Envelope struct {
	Version  int             `json:"version"`
	Checksum string          `json:"checksum"`
	Payload  json.RawMessage `json:"payload"`
}

// Checksum returns the hex blake2b-256 digest of payload.
func Checksum(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Encode serialises s into a checksummed envelope.
func Encode(s *Snapshot) ([]byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	b, err := json.Marshal(Envelope{
		Version:  Version,
		Checksum: Checksum(payload),
		Payload:  payload,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	return b, nil
}

// Decode verifies an envelope and parses its snapshot.
func Decode(b []byte) (*Snapshot, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	if env.Version < 1 || env.Version > Version {
		return nil, fmt.Errorf("envelope version %d: %w", env.Version, ErrUnsupportedVersion)
	}
	if got := Checksum(env.Payload); got != env.Checksum {
		return nil, fmt.Errorf("payload hashes to %s, envelope says %s: %w", got, env.Checksum, ErrChecksumMismatch)
	}
	return ParseSnapshot(env.Payload)
}
