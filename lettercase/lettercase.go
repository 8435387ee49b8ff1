// Package lettercase provides a steganographic carrier that hides an
// encoded secret in the letter case of ordinary text: lowercase letters
// represent the A symbol, uppercase letters the B symbol.
package lettercase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/zoobzio/bacon"
)

const carrierName = "lettercase"

// Steganographer hides secrets in letter case. It needs no configuration;
// the zero value is ready to use.
type Steganographer[AB comparable] struct{}

// New returns a letter-case carrier.
func New[AB comparable]() *Steganographer[AB] {
	return &Steganographer[AB]{}
}

// Disguise embeds secret into public by flipping the case of alphabetic
// characters: lowercase carries A, uppercase carries B.
//
// The secret may contain only letters and spaces. The public text must
// hold at least GroupSize alphabetic characters for every alphabetic
// character of the secret; violations fail with a *bacon.CapacityError
// naming the required and available counts.
func (s *Steganographer[AB]) Disguise(secret, public string, codec bacon.Codec[AB]) (string, error) {
	start := time.Now()
	bacon.EmitDisguiseStart(context.Background(), carrierName, len(secret), len(public))

	out, err := s.disguise(secret, public, codec)
	bacon.EmitDisguiseComplete(context.Background(), carrierName, len(out), time.Since(start), err)
	return out, err
}

func (s *Steganographer[AB]) disguise(secret, public string, codec bacon.Codec[AB]) (string, error) {
	for _, r := range secret {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", &bacon.SecretError{Err: bacon.ErrSecretContent, Rune: r}
		}
	}

	required := countLetters(secret) * codec.GroupSize()
	available := countLetters(public)
	if available < required {
		return "", &bacon.CapacityError{Err: bacon.ErrCapacity, Required: required, Available: available}
	}

	encoded := codec.Encode(secret)

	var disguised strings.Builder
	disguised.Grow(len(public))
	i := 0

	for _, pc := range public {
		if !unicode.IsLetter(pc) || i >= len(encoded) {
			disguised.WriteRune(pc)
			continue
		}
		switch {
		case codec.IsA(encoded[i]):
			disguised.WriteRune(unicode.ToLower(pc))
			i++
		case codec.IsB(encoded[i]):
			disguised.WriteRune(unicode.ToUpper(pc))
			i++
		default:
			disguised.WriteRune(pc)
		}
	}

	return disguised.String(), nil
}

// Reveal reads the case of every alphabetic character of input back into
// an alphabet sequence and decodes it. Trailing characters that do not
// form a full group degrade to the sentinel space.
func (s *Steganographer[AB]) Reveal(input string, codec bacon.Codec[AB]) (string, error) {
	start := time.Now()
	bacon.EmitRevealStart(context.Background(), carrierName, len(input))

	encoded := make([]AB, 0, len(input))
	for _, r := range input {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			encoded = append(encoded, codec.B())
		} else {
			encoded = append(encoded, codec.A())
		}
	}

	out := codec.Decode(encoded)
	bacon.EmitRevealComplete(context.Background(), carrierName, len(out), time.Since(start), nil)
	return out, nil
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

var _ bacon.Steganographer[rune] = (*Steganographer[rune])(nil)
