// Package testing provides test utilities for bacon.
package testing

import "github.com/zoobzio/bacon/charcodec"

// Canonical fixtures shared across the carrier test suites.
const (
	// Secret is the canonical secret hidden by the examples.
	Secret = "My secret"

	// Revealed is what every carrier's Reveal must begin with after a
	// round trip of Secret.
	Revealed = "MYSECRET"

	// Public is the canonical carrier text. It holds 43 alphabetic
	// characters, enough for the 40 symbols that encode Secret.
	Public = "This is a public message that contains a secret one"

	// Disguised is the letter-case disguise of Secret onto Public under
	// the ('a', 'b') first-variant codec.
	Disguised = "tHiS IS a PUbLic mEssAge thaT cOntains A seCreT one"
)

// Codec returns a first-variant rune codec with symbols 'a' and 'b'.
func Codec() *charcodec.Codec[rune] {
	return charcodec.New('a', 'b')
}

// CodecV2 returns a second-variant rune codec with symbols 'a' and 'b'.
func CodecV2() *charcodec.Codec[rune] {
	return charcodec.NewV2('a', 'b')
}

// BoolCodec returns a first-variant codec over the boolean alphabet,
// false carrying A and true carrying B.
func BoolCodec() *charcodec.Codec[bool] {
	return charcodec.New(false, true)
}
