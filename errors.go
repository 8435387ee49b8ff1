package bacon

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMarkerOverlap indicates a delimiter of one side contains, or is
	// contained in, a delimiter of the other side.
	ErrMarkerOverlap = errors.New("overlapping marker delimiters")

	// ErrNoMarker indicates neither side of a carrier defines a marker.
	ErrNoMarker = errors.New("no marker defined")

	// ErrPartialMarker indicates a marker defines only one of its start
	// and end delimiters.
	ErrPartialMarker = errors.New("partial marker definition")

	// ErrSecretContent indicates a secret contains characters the carrier
	// cannot embed.
	ErrSecretContent = errors.New("invalid secret content")

	// ErrCapacity indicates the public text is too short to carry the
	// encoded secret.
	ErrCapacity = errors.New("insufficient carrier capacity")
)

// ConfigError represents a carrier configuration error.
// It wraps a sentinel error with the offending delimiter strings.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrMarkerOverlap, etc.)
	Detail string // Delimiters that triggered the error
}

func (e *ConfigError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SecretError represents a disguise-time secret validation failure.
type SecretError struct {
	Err  error // Underlying sentinel error (ErrSecretContent)
	Rune rune  // Offending character
}

func (e *SecretError) Error() string {
	return fmt.Sprintf("%s: secret may contain only letters and spaces, found %q", e.Err.Error(), e.Rune)
}

func (e *SecretError) Unwrap() error {
	return e.Err
}

// CapacityError represents a disguise-time capacity failure. It names the
// required and available alphabetic character counts.
type CapacityError struct {
	Err       error // Underlying sentinel error (ErrCapacity)
	Required  int   // Alphabetic characters needed in the public text
	Available int   // Alphabetic characters found in the public text
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: need %d alphabetic characters, have %d", e.Err.Error(), e.Required, e.Available)
}

func (e *CapacityError) Unwrap() error {
	return e.Err
}
