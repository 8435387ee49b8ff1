// Package tag provides a steganographic carrier that hides an encoded
// secret by wrapping carrier letters in structural open/close tags, in
// the manner of HTML elements. Letters inside the A-side tag carry the A
// symbol, letters inside the B-side tag carry the B symbol.
//
// Disguising treats tags as plain substrings; revealing parses the input
// as an HTML document and classifies text by its enclosing element.
package tag

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/net/html"

	"github.com/zoobzio/bacon"
)

const carrierName = "tag"

// Tag is a pair of open/close tag strings bracketing characters that
// represent one alphabet symbol, e.g. "<b>" and "</b>". The zero value
// means the side is undefined.
type Tag struct {
	Open  string
	Close string
}

func (t Tag) defined() bool {
	return t.Open != "" && t.Close != ""
}

// Steganographer hides secrets between structural tags.
//
// Steganographers are immutable after construction and safe for
// concurrent use.
type Steganographer[AB comparable] struct {
	aTag     Tag
	bTag     Tag
	collapse bool
}

// Option configures a Steganographer.
type Option[AB comparable] func(*Steganographer[AB])

// WithoutCollapse disables the fusing of adjacent same-side tags in
// disguise output. Every carrier letter then gets its own tag pair, which
// keeps the per-letter boundaries visible at the cost of longer output.
func WithoutCollapse[AB comparable]() Option[AB] {
	return func(s *Steganographer[AB]) {
		s.collapse = false
	}
}

// New creates a tag carrier with the given A-side and B-side tags. The
// validation rules match the marker carrier; violations fail with a
// *bacon.ConfigError.
func New[AB comparable](a, b Tag, opts ...Option[AB]) (*Steganographer[AB], error) {
	if err := bacon.ValidateDelimiters(a.Open, a.Close, b.Open, b.Close); err != nil {
		return nil, err
	}
	s := &Steganographer[AB]{aTag: a, bTag: b, collapse: true}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Disguise embeds secret into public by wrapping alphabetic characters in
// the tag of the symbol they carry. Unless WithoutCollapse was given,
// adjacent tags of the same side are fused into one element.
//
//nolint:dupl // Intentional parallel structure with the marker carrier
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
			disguised.WriteString(s.aTag.Open)
			disguised.WriteRune(pc)
			disguised.WriteString(s.aTag.Close)
			i++
		case codec.IsB(encoded[i]):
			disguised.WriteString(s.bTag.Open)
			disguised.WriteRune(pc)
			disguised.WriteString(s.bTag.Close)
			i++
		default:
			disguised.WriteRune(pc)
		}
	}

	out := disguised.String()
	if s.collapse {
		out = fuse(fuse(out, s.aTag), s.bTag)
	}

	bacon.EmitDisguiseComplete(context.Background(), carrierName, len(out), time.Since(start), nil)
	return out, nil
}

// fuse removes every close+open joint so consecutive same-side letters
// share one element.
func fuse(s string, t Tag) string {
	joint := t.Close + t.Open
	if joint == "" {
		return s
	}
	return strings.ReplaceAll(s, joint, "")
}

// Reveal parses input as an HTML document, classifies every text run by
// its enclosing element, and decodes the recovered alphabet sequence.
// Text inside elements matching neither tag belongs to the undefined side
// when exactly one side is undefined, and carries nothing otherwise.
func (s *Steganographer[AB]) Reveal(input string, codec bacon.Codec[AB]) (string, error) {
	start := time.Now()
	bacon.EmitRevealStart(context.Background(), carrierName, len(input))

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		err = fmt.Errorf("parse carrier document: %w", err)
		bacon.EmitRevealComplete(context.Background(), carrierName, 0, time.Since(start), err)
		return "", err
	}

	encoded := make([]AB, 0, len(input))
	s.walk(doc, classNone, func(text string, cls class) {
		for _, r := range text {
			if !unicode.IsLetter(r) {
				continue
			}
			if cls == classA {
				encoded = append(encoded, codec.A())
			} else {
				encoded = append(encoded, codec.B())
			}
		}
	})

	out := codec.Decode(encoded)
	bacon.EmitRevealComplete(context.Background(), carrierName, len(out), time.Since(start), nil)
	return out, nil
}

type class int

const (
	classNone class = iota
	classA
	classB
	classOther
)

// walk visits the node tree depth-first, passing each text node to emit
// together with the classification of its enclosing element.
func (s *Steganographer[AB]) walk(n *html.Node, enclosing class, emit func(text string, cls class)) {
	current := enclosing

	switch n.Type {
	case html.TextNode:
		switch enclosing {
		case classA, classB:
			emit(n.Data, enclosing)
		case classOther:
			// Text outside both tags belongs to the undefined side, if
			// there is one.
			if !s.aTag.defined() {
				emit(n.Data, classA)
			} else if !s.bTag.defined() {
				emit(n.Data, classB)
			}
		case classNone:
			// Text with no enclosing element carries nothing.
		}
		return
	case html.ElementNode:
		switch "<" + n.Data + ">" {
		case s.aTag.Open:
			current = classA
		case s.bTag.Open:
			current = classB
		default:
			current = classOther
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		s.walk(child, current, emit)
	}
}

var _ bacon.Steganographer[rune] = (*Steganographer[rune])(nil)
