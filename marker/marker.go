// Package marker provides a steganographic carrier that hides an encoded
// secret by bracketing carrier letters with configurable textual
// delimiters. Letters wrapped by the A-side marker carry the A symbol,
// letters wrapped by the B-side marker carry the B symbol.
//
// A side may be left undefined (the zero Marker). Revealing then treats
// every character outside the defined side's markers as belonging to the
// undefined side.
package marker

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/zoobzio/bacon"
)

const carrierName = "marker"

// Marker is a pair of delimiter strings bracketing characters that
// represent one alphabet symbol. The zero value means the side is
// undefined; a Marker must define both delimiters or neither.
type Marker struct {
	Start string
	End   string
}

func (m Marker) defined() bool {
	return m.Start != "" && m.End != ""
}

// Steganographer hides secrets between textual markers.
//
// Steganographers are immutable after construction and safe for
// concurrent use.
type Steganographer[AB comparable] struct {
	aMark Marker
	bMark Marker
}

// New creates a marker carrier with the given A-side and B-side markers.
//
// At least one side must be fully defined, a side may not define only one
// of its delimiters, and when both sides are defined no delimiter of one
// side may contain or be contained in a delimiter of the other. Violations
// fail with a *bacon.ConfigError.
func New[AB comparable](a, b Marker) (*Steganographer[AB], error) {
	if err := bacon.ValidateDelimiters(a.Start, a.End, b.Start, b.End); err != nil {
		return nil, err
	}
	return &Steganographer[AB]{aMark: a, bMark: b}, nil
}

// Disguise embeds secret into public by wrapping alphabetic characters in
// the marker of the symbol they carry. Adjacent markers of the same side
// are fused into one bracketed span.
//
//nolint:dupl // Intentional parallel structure with the tag carrier
func (s *Steganographer[AB]) Disguise(secret, public string, codec bacon.Codec[AB]) (string, error) {
	start := time.Now()
	bacon.EmitDisguiseStart(context.Background(), carrierName, len(secret), len(public))

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
			disguised.WriteString(s.aMark.Start)
			disguised.WriteRune(pc)
			disguised.WriteString(s.aMark.End)
			i++
		case codec.IsB(encoded[i]):
			disguised.WriteString(s.bMark.Start)
			disguised.WriteRune(pc)
			disguised.WriteString(s.bMark.End)
			i++
		default:
			disguised.WriteRune(pc)
		}
	}

	out := collapse(collapse(disguised.String(), s.aMark), s.bMark)
	bacon.EmitDisguiseComplete(context.Background(), carrierName, len(out), time.Since(start), nil)
	return out, nil
}

// collapse fuses consecutive same-side spans by removing every end+start
// joint from the wrapped output.
func collapse(s string, m Marker) string {
	joint := m.End + m.Start
	if joint == "" {
		return s
	}
	return strings.ReplaceAll(s, joint, "")
}

// Reveal scans input for marked spans, infers the classification of
// unmarked characters when one side is undefined, and decodes the
// recovered alphabet sequence. Unmatched end delimiters clamp to the end
// of the input rather than failing.
func (s *Steganographer[AB]) Reveal(input string, codec bacon.Codec[AB]) (string, error) {
	start := time.Now()
	bacon.EmitRevealStart(context.Background(), carrierName, len(input))

	spans := s.scan(input)
	if s.aMark.defined() != s.bMark.defined() {
		spans = s.inferUnmarked(input, spans)
	}

	encoded := make([]AB, 0, len(input))
	for _, sp := range spans {
		for _, r := range sp.text {
			if !unicode.IsLetter(r) {
				continue
			}
			if sp.side == sideA {
				encoded = append(encoded, codec.A())
			} else {
				encoded = append(encoded, codec.B())
			}
		}
	}

	out := codec.Decode(encoded)
	bacon.EmitRevealComplete(context.Background(), carrierName, len(out), time.Since(start), nil)
	return out, nil
}

type side int

const (
	sideA side = iota
	sideB
)

// span is one classified token of the scanned input. lo and hi are byte
// offsets into the original input covering the whole consumed region,
// delimiters included.
type span struct {
	text string
	side side
	lo   int
	hi   int
}

// scan tokenizes input left to right. At each position it locates the
// nearer of the next A-start or B-start delimiter, consumes it, and takes
// everything up to that side's end delimiter as the span text. A missing
// end delimiter clamps the span to the end of the input.
//
// Each iteration moves pos past at least the consumed start delimiter, so
// the loop always terminates.
func (s *Steganographer[AB]) scan(input string) []span {
	var spans []span
	pos := 0

	for pos < len(input) {
		m, lo, ok := s.nextStart(input, pos)
		if !ok {
			break
		}

		contentLo := lo + len(m.mark.Start)
		rest := input[contentLo:]
		end := strings.Index(rest, m.mark.End)
		if end < 0 {
			if rest == "" {
				break
			}
			spans = append(spans, span{text: rest, side: m.side, lo: lo, hi: len(input)})
			break
		}

		spans = append(spans, span{
			text: rest[:end],
			side: m.side,
			lo:   lo,
			hi:   contentLo + end + len(m.mark.End),
		})
		pos = contentLo + end + len(m.mark.End)
	}

	return spans
}

type startMatch struct {
	mark Marker
	side side
}

// nextStart finds the nearest start delimiter at or after pos. A tie
// between the two sides stops the scan; validation makes ties
// unreachable for fully-defined configurations.
func (s *Steganographer[AB]) nextStart(input string, pos int) (startMatch, int, bool) {
	aAt, bAt := -1, -1
	if s.aMark.defined() {
		if at := strings.Index(input[pos:], s.aMark.Start); at >= 0 {
			aAt = pos + at
		}
	}
	if s.bMark.defined() {
		if at := strings.Index(input[pos:], s.bMark.Start); at >= 0 {
			bAt = pos + at
		}
	}

	switch {
	case aAt >= 0 && (bAt < 0 || aAt < bAt):
		return startMatch{mark: s.aMark, side: sideA}, aAt, true
	case bAt >= 0 && (aAt < 0 || bAt < aAt):
		return startMatch{mark: s.bMark, side: sideB}, bAt, true
	default:
		return startMatch{}, 0, false
	}
}

// inferUnmarked assigns every character not covered by a scanned span to
// the undefined side, one character at a time, preserving input order.
func (s *Steganographer[AB]) inferUnmarked(input string, spans []span) []span {
	inferred := sideA
	if s.aMark.defined() {
		inferred = sideB
	}

	out := make([]span, 0, len(spans))
	pos := 0
	for _, sp := range spans {
		for _, r := range input[pos:sp.lo] {
			out = append(out, span{text: string(r), side: inferred})
		}
		out = append(out, sp)
		pos = sp.hi
	}
	for _, r := range input[pos:] {
		out = append(out, span{text: string(r), side: inferred})
	}

	return out
}

var _ bacon.Steganographer[rune] = (*Steganographer[rune])(nil)
