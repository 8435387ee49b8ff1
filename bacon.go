// Package bacon implements Bacon's cipher with pluggable steganographic
// carriers.
//
// Bacon's cipher encodes each letter of a secret as a fixed-length group
// over a two-symbol alphabet, conventionally written "A" and "B". The
// package splits the work between two abstractions:
//
//   - Codec converts between letters and encoded groups. The alphabet
//     symbols are a type parameter, so the same substitution table drives
//     printed ciphers (runes), bit streams (bools), or any comparable
//     two-valued type.
//   - Steganographer hides an encoded sequence inside ordinary carrier
//     text by modulating an observable property of that text: letter
//     case, surrounding markers, or wrapping tags.
//
// # Basic Usage
//
//	codec := charcodec.Default()
//	groups := codec.Encode("My secret")
//	// groups: ABABBBABBABAAABAABAAAAABABAAAAAABAABAABA
//
//	carrier := lettercase.New[rune]()
//	hidden, _ := carrier.Disguise("My secret", "This is a public message that contains a secret one", codec)
//	// hidden: "tHiS IS a PUbLic mEssAge thaT cOntains A seCreT one"
//
//	secret, _ := carrier.Reveal(hidden, codec)
//	// secret starts with "MYSECRET"
//
// # Carrier Providers
//
// The following carrier implementations are available as subpackages:
//
//   - lettercase - lowercase/uppercase letters as the two symbols
//   - marker - configurable textual delimiters around letters
//   - tag - structural open/close tags, revealed through an HTML parser
//
// # Error Model
//
// All errors are values. They are produced at exactly two points: carrier
// construction with an invalid marker configuration, and disguise-time
// validation of the secret and the carrier capacity. Everything else
// degrades silently: unmatched delimiters clamp to the end of the input,
// unrecognized groups decode to a space, and a ragged final group decodes
// to a space rather than failing. A successful Reveal therefore means
// "best effort", not proof that a secret was present.
package bacon

import "strings"

// Codec converts between letter content and fixed-length groups over a
// two-symbol alphabet of type AB.
//
// Implementations are immutable after construction and safe for
// concurrent use.
type Codec[AB comparable] interface {
	// Encode maps each letter of content to its encoded group and
	// concatenates the groups in order. Characters outside the 26-letter
	// Latin alphabet contribute no elements.
	Encode(content string) []AB

	// Decode partitions encoded into consecutive groups of GroupSize
	// elements and maps each group back to an uppercase letter.
	// Unrecognized groups, including a short final group, decode to a
	// space.
	Decode(encoded []AB) string

	// A returns the first substitution symbol.
	A() AB

	// B returns the second substitution symbol.
	B() AB

	// IsA reports whether elem equals the A symbol.
	IsA(elem AB) bool

	// IsB reports whether elem equals the B symbol.
	IsB(elem AB) bool

	// GroupSize returns the number of symbols that encode one letter.
	// For the classical cipher this is 5.
	GroupSize() int
}

// Steganographer hides and recovers encoded secrets inside carrier text.
//
// Implementations are immutable after construction and safe for
// concurrent use.
type Steganographer[AB comparable] interface {
	// Disguise encodes secret with codec and embeds the result into
	// public by transforming its alphabetic characters one encoded
	// element at a time. Non-alphabetic characters pass through
	// unchanged, and once the encoded sequence is exhausted the rest of
	// public passes through untouched.
	Disguise(secret, public string, codec Codec[AB]) (string, error)

	// Reveal recovers the alphabet sequence hidden in input and decodes
	// it with codec. Only the codec's A/B/Decode are consulted, so a
	// fresh codec works as long as it was built with the same table and
	// symbols.
	Reveal(input string, codec Codec[AB]) (string, error)
}

// ValidateDelimiters checks a pair of start/end delimiter definitions for
// the two alphabet sides. An empty string means the delimiter is absent.
//
// The rules, shared by the marker and tag carriers:
//
//   - a side must define both its start and end delimiters, or neither
//   - at least one side must be fully defined
//   - when both sides are fully defined, no delimiter of one side may
//     contain or be contained in a delimiter of the other side
//
// Violations are reported as a *ConfigError wrapping ErrPartialMarker,
// ErrNoMarker, or ErrMarkerOverlap.
func ValidateDelimiters(aStart, aEnd, bStart, bEnd string) error {
	aDefined := aStart != "" && aEnd != ""
	aAbsent := aStart == "" && aEnd == ""
	bDefined := bStart != "" && bEnd != ""
	bAbsent := bStart == "" && bEnd == ""

	if !aDefined && !aAbsent {
		return &ConfigError{Err: ErrPartialMarker, Detail: detail(aStart, aEnd)}
	}
	if !bDefined && !bAbsent {
		return &ConfigError{Err: ErrPartialMarker, Detail: detail(bStart, bEnd)}
	}
	if aAbsent && bAbsent {
		return &ConfigError{Err: ErrNoMarker}
	}
	if aDefined && bDefined {
		// Containment across sides makes the scan ambiguous: the nearer-
		// start rule could match inside the other side's delimiter. The
		// start and end of the same side may coincide ("*"..."*").
		for _, a := range []string{aStart, aEnd} {
			for _, b := range []string{bStart, bEnd} {
				if strings.Contains(a, b) || strings.Contains(b, a) {
					return &ConfigError{Err: ErrMarkerOverlap, Detail: detail(a, b)}
				}
			}
		}
	}
	return nil
}

func detail(x, y string) string {
	return "[" + x + " " + y + "]"
}
