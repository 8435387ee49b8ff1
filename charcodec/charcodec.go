// Package charcodec provides Bacon's-cipher substitution codecs over the
// 26-letter Latin alphabet.
//
// Two historical substitution tables exist. The first variant encodes I/J
// and U/V with shared groups, the second gives all 26 letters distinct
// groups. Both are case-insensitive on encode and produce uppercase on
// decode.
package charcodec

import "github.com/zoobzio/bacon"

// groupSize is the number of alphabet symbols that encode one letter.
const groupSize = 5

// v1Groups maps letter index to its 5-bit group under the first variant
// of the cipher. I and J share a group, as do U and V.
var v1Groups = [26]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, // A-H
	8, 8, // I, J
	9, 10, 11, 12, 13, 14, 15, 16, 17, 18, // K-T
	19, 19, // U, V
	20, 21, 22, 23, // W-Z
}

// v2Groups maps letter index to its 5-bit group under the second variant.
// All 26 letters are distinct.
var v2Groups = [26]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25,
}

// Codec encodes letters by substituting with two given symbols of type AB.
// The zero value is not usable; construct with New, NewV2, or Default.
//
// Codecs are immutable after construction and safe for concurrent use.
type Codec[AB comparable] struct {
	a       AB
	b       AB
	groups  [26]uint8
	letters map[uint8]rune
}

// New creates a Codec substituting with symbols a and b, using the first
// variant of the Bacon's cipher. The symbols are not required to differ;
// a degenerate alphabet decodes every group to the same value.
func New[AB comparable](a, b AB) *Codec[AB] {
	return build(a, b, v1Groups)
}

// NewV2 creates a Codec substituting with symbols a and b, using the
// second variant of the Bacon's cipher.
func NewV2[AB comparable](a, b AB) *Codec[AB] {
	return build(a, b, v2Groups)
}

// Default returns a first-variant Codec with symbols 'A' and 'B'.
//
// It encodes "My secret" to ABABBBABBABAAABAABAAAAABABAAAAAABAABAABA.
func Default() *Codec[rune] {
	return New[rune]('A', 'B')
}

func build[AB comparable](a, b AB, groups [26]uint8) *Codec[AB] {
	// Reverse lookup is first-wins: under the first variant group 8
	// decodes to I (not J) and group 19 to U (not V).
	letters := make(map[uint8]rune, 26)
	for i, g := range groups {
		if _, ok := letters[g]; !ok {
			letters[g] = rune('A' + i)
		}
	}
	return &Codec[AB]{a: a, b: b, groups: groups, letters: letters}
}

// Encode maps each letter of content to its 5-symbol group and
// concatenates the groups. Non-letter characters contribute no symbols.
func (c *Codec[AB]) Encode(content string) []AB {
	encoded := make([]AB, 0, len(content)*groupSize)
	for _, r := range content {
		switch {
		case r >= 'A' && r <= 'Z':
			encoded = c.appendGroup(encoded, c.groups[r-'A'])
		case r >= 'a' && r <= 'z':
			encoded = c.appendGroup(encoded, c.groups[r-'a'])
		}
	}
	return encoded
}

func (c *Codec[AB]) appendGroup(dst []AB, group uint8) []AB {
	for bit := groupSize - 1; bit >= 0; bit-- {
		if group&(1<<bit) != 0 {
			dst = append(dst, c.b)
		} else {
			dst = append(dst, c.a)
		}
	}
	return dst
}

// Decode partitions encoded into consecutive groups of five symbols and
// maps each group back to an uppercase letter. Unrecognized groups decode
// to a space, as does a short final group.
func (c *Codec[AB]) Decode(encoded []AB) string {
	decoded := make([]rune, 0, len(encoded)/groupSize+1)
	for lo := 0; lo < len(encoded); lo += groupSize {
		hi := lo + groupSize
		if hi > len(encoded) {
			hi = len(encoded)
		}
		decoded = append(decoded, c.decodeGroup(encoded[lo:hi]))
	}
	return string(decoded)
}

func (c *Codec[AB]) decodeGroup(elems []AB) rune {
	if len(elems) != groupSize {
		return ' '
	}
	var group uint8
	for _, elem := range elems {
		group <<= 1
		switch {
		case elem == c.b:
			group |= 1
		case elem == c.a:
			// zero bit
		default:
			return ' '
		}
	}
	letter, ok := c.letters[group]
	if !ok {
		return ' '
	}
	return letter
}

// A returns the first substitution symbol.
func (c *Codec[AB]) A() AB { return c.a }

// B returns the second substitution symbol.
func (c *Codec[AB]) B() AB { return c.b }

// IsA reports whether elem equals the A symbol.
func (c *Codec[AB]) IsA(elem AB) bool { return elem == c.a }

// IsB reports whether elem equals the B symbol.
func (c *Codec[AB]) IsB(elem AB) bool { return elem == c.b }

// GroupSize returns the number of symbols that encode one letter.
func (c *Codec[AB]) GroupSize() int { return groupSize }

var _ bacon.Codec[rune] = (*Codec[rune])(nil)
