package charcodec

import (
	"strings"
	"testing"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Full-alphabet cipher streams for both table variants.
const (
	v1Alphabet = "aaaaaaaaabaaabaaaabbaabaaaababaabbaaabbbabaaaabaaaabaabababaababbabbaaabbababbbaabbbbbaaaabaaabbaababaabbbaabbbabaabababbabbababbb"
	v2Alphabet = "aaaaaaaaabaaabaaaabbaabaaaababaabbaaabbbabaaaabaabababaababbabbaaabbababbbaabbbbbaaaabaaabbaababaabbbabaabababbabbababbbbbaaabbaab"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "secret with space", content: "My secret", want: "ababbbabbabaaabaabaaaaababaaaaaabaabaaba"},
		{name: "lowercase alphabet", content: alphabet, want: v1Alphabet},
		{name: "uppercase alphabet", content: strings.ToUpper(alphabet), want: v1Alphabet},
		{name: "non-letters dropped", content: "a1b2!", want: "aaaaaaaaab"},
		{name: "empty", content: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New('a', 'b')
			got := string(c.Encode(tt.content))
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestEncodeV2(t *testing.T) {
	c := NewV2('a', 'b')

	if got := string(c.Encode(alphabet)); got != v2Alphabet {
		t.Errorf("Encode(alphabet) = %q, want %q", got, v2Alphabet)
	}
	if got := string(c.Encode(strings.ToUpper(alphabet))); got != v2Alphabet {
		t.Errorf("Encode(ALPHABET) = %q, want %q", got, v2Alphabet)
	}
}

func TestDecode(t *testing.T) {
	c := New('a', 'b')

	got := c.Decode([]rune("ababbbabbabaaabaabaaaaababaaaaaabaabaaba"))
	if got != "MYSECRET" {
		t.Errorf("Decode() = %q, want %q", got, "MYSECRET")
	}
}

func TestDecodeFullAlphabet(t *testing.T) {
	// I/J and U/V share groups under the first variant, so the reverse
	// lookup yields I and U for the shared groups.
	c := New('a', 'b')

	got := c.Decode([]rune(v1Alphabet))
	if got != "ABCDEFGHIIKLMNOPQRSTUUWXYZ" {
		t.Errorf("Decode() = %q, want %q", got, "ABCDEFGHIIKLMNOPQRSTUUWXYZ")
	}
}

func TestDecodeFullAlphabetV2(t *testing.T) {
	c := NewV2('a', 'b')

	got := c.Decode([]rune(v2Alphabet))
	if got != strings.ToUpper(alphabet) {
		t.Errorf("Decode() = %q, want %q", got, strings.ToUpper(alphabet))
	}
}

func TestRoundTrip(t *testing.T) {
	secret := "THEQUICKBROWNFOXIUMPSOUERTHELAZYDOG"

	for _, tt := range []struct {
		name  string
		codec *Codec[rune]
	}{
		{name: "v1", codec: New('a', 'b')},
		{name: "v2", codec: NewV2('a', 'b')},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.codec.Decode(tt.codec.Encode(secret))
			if got != secret {
				t.Errorf("Decode(Encode(%q)) = %q", secret, got)
			}
		})
	}
}

func TestDecodeRaggedFinalGroup(t *testing.T) {
	c := New('a', 'b')

	// Seven symbols: one full group plus two leftover symbols. The
	// leftover must degrade to the sentinel space, never panic or
	// truncate.
	got := c.Decode([]rune("aaaaaab"))
	if got != "A " {
		t.Errorf("Decode() = %q, want %q", got, "A ")
	}
}

func TestDecodeUnknownSymbol(t *testing.T) {
	c := New('a', 'b')

	got := c.Decode([]rune("aaaxa"))
	if got != " " {
		t.Errorf("Decode() = %q, want %q", got, " ")
	}
}

func TestDecodeEmpty(t *testing.T) {
	c := New('a', 'b')

	if got := c.Decode(nil); got != "" {
		t.Errorf("Decode(nil) = %q, want empty", got)
	}
}

func TestBoolAlphabet(t *testing.T) {
	c := New(false, true)

	encoded := c.Encode("My secret")
	want := []bool{
		false, true, false, true, true, true, false, true, true, false,
		true, false, false, false, true, false, false, true, false, false,
		false, false, false, true, false, true, false, false, false, false,
		false, false, true, false, false, true, false, false, true, false,
	}
	if len(encoded) != len(want) {
		t.Fatalf("Encode() length = %d, want %d", len(encoded), len(want))
	}
	for i := range want {
		if encoded[i] != want[i] {
			t.Fatalf("Encode()[%d] = %v, want %v", i, encoded[i], want[i])
		}
	}

	if got := c.Decode(encoded); got != "MYSECRET" {
		t.Errorf("Decode() = %q, want %q", got, "MYSECRET")
	}
}

func TestAlphabetIndependence(t *testing.T) {
	// The same content must yield structurally identical group patterns
	// regardless of the symbol type.
	runes := New('a', 'b')
	bools := New(false, true)

	content := "Alphabet independence"
	fromRunes := runes.Encode(content)
	fromBools := bools.Encode(content)

	if len(fromRunes) != len(fromBools) {
		t.Fatalf("length mismatch: %d vs %d", len(fromRunes), len(fromBools))
	}
	for i := range fromRunes {
		if runes.IsB(fromRunes[i]) != bools.IsB(fromBools[i]) {
			t.Errorf("symbol mismatch at %d", i)
		}
	}
}

func TestSymbolAccessors(t *testing.T) {
	c := Default()

	if c.A() != 'A' || c.B() != 'B' {
		t.Errorf("Default() symbols = %q/%q, want A/B", c.A(), c.B())
	}
	if !c.IsA('A') || c.IsA('B') {
		t.Error("IsA misclassifies symbols")
	}
	if !c.IsB('B') || c.IsB('A') {
		t.Error("IsB misclassifies symbols")
	}
	if c.GroupSize() != 5 {
		t.Errorf("GroupSize() = %d, want 5", c.GroupSize())
	}
}
