package periodic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapColumns(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		threshold int
		want      string
	}{
		{"short text is untouched", "Helium", 10, "Helium"},
		{"breaks at the last space", "aaaa aaaa aaaa", 5, "aaaa\naaaa\naaaa"},
		{"no space means no break", "abcdefghijkl", 4, "abcdefghijkl"},
		{"zero threshold", "a b c", 0, "a b c"},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapColumns(tt.in, tt.threshold))
		})
	}
}

func TestWrapColumnsKeepsRunes(t *testing.T) {
	in := "Hydrogen is a chemical element with chemical symbol H and atomic number 1."
	out := WrapColumns(in, 20)

	assert.Equal(t, len([]rune(in)), len([]rune(out)))
	assert.Equal(t, in, strings.ReplaceAll(out, "\n", " "))
	assert.Greater(t, strings.Count(out, "\n"), 1)
}

func TestWrapColumnsIdempotent(t *testing.T) {
	once := WrapColumns("aaaa aaaa aaaa", 5)
	assert.Equal(t, once, WrapColumns(once, 5))
}

func TestTruncateText(t *testing.T) {
	ctx := NewContext()

	// The bitmap fallback measures half the text size per rune.
	assert.Equal(t, "Hydrogen", TruncateText(ctx, "Hydrogen", 10, 40))
	assert.Equal(t, "Hydr..", TruncateText(ctx, "Hydrogen", 10, 30))
	assert.Equal(t, "Hyd..", TruncateText(ctx, "Hydrogen", 10, 25))
	assert.Equal(t, "Tin..", TruncateText(ctx, "Tin and lead", 10, 30))
	assert.Equal(t, "..", TruncateText(ctx, "Hydrogen", 10, 5))
}
