package bacon

import (
	"errors"
	"testing"
)

func TestValidateDelimiters(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       error
	}{
		{name: "both defined disjoint", aStart: "*", aEnd: "*", bStart: "!", bEnd: "!"},
		{name: "only a defined", aStart: "**", aEnd: "**"},
		{name: "only b defined", bStart: "*", bEnd: "*"},
		{name: "same side start equals end", aStart: "*", aEnd: "*", bStart: "@@", bEnd: "@@"},
		{
			name: "both undefined",
			want: ErrNoMarker,
		},
		{
			name:   "a start only",
			aStart: "*",
			bStart: "!", bEnd: "!",
			want: ErrPartialMarker,
		},
		{
			name: "b end only",
			aStart: "*", aEnd: "*",
			bEnd: "!",
			want: ErrPartialMarker,
		},
		{
			name:   "cross containment",
			aStart: "*", aEnd: "*",
			bStart: "**", bEnd: "**",
			want: ErrMarkerOverlap,
		},
		{
			name:   "cross containment reversed",
			aStart: "**", aEnd: "@",
			bStart: "*", bEnd: "!",
			want: ErrMarkerOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDelimiters(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if tt.want == nil {
				if err != nil {
					t.Errorf("ValidateDelimiters() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateDelimiters() error = %v, want %v", err, tt.want)
			}
		})
	}
}
