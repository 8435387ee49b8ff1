package testing

import (
	"strings"
	"testing"
)

func TestCodecEncodesSecret(t *testing.T) {
	codec := Codec()

	encoded := codec.Encode(Secret)
	if got := string(encoded); got != "ababbbabbabaaabaabaaaaababaaaaaabaabaaba" {
		t.Errorf("unexpected encoding: %s", got)
	}
}

func TestCodecVariantsDiverge(t *testing.T) {
	v1 := Codec()
	v2 := CodecV2()

	// The variants agree through T and diverge afterwards.
	if got := string(v1.Encode("z")); got != "babbb" {
		t.Errorf("v1 z = %s", got)
	}
	if got := string(v2.Encode("z")); got != "bbaab" {
		t.Errorf("v2 z = %s", got)
	}
}

func TestBoolCodecRoundTrip(t *testing.T) {
	codec := BoolCodec()

	decoded := codec.Decode(codec.Encode(Secret))
	if !strings.HasPrefix(decoded, Revealed) {
		t.Errorf("decoded = %q, want prefix %q", decoded, Revealed)
	}
}

func TestPublicCapacity(t *testing.T) {
	letters := 0
	for _, r := range Public {
		if r != ' ' {
			letters++
		}
	}

	needed := 0
	for _, r := range Secret {
		if r != ' ' {
			needed += 5
		}
	}

	if letters < needed {
		t.Errorf("public fixture holds %d letters, need %d", letters, needed)
	}
}
