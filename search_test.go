package periodic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSet(t *testing.T) {
	elements := loadElements(t)

	tests := []struct {
		buffer string
		want   []int
	}{
		{"", nil},
		{"xyz", nil},
		{"hydro", []int{1}},
		{"HYDRO", []int{1}},
		{"gen", []int{1, 7, 8, 111}},
		{"tin", []int{50}}, // Platinum, Astatine, Actinium and Protactinium also contain it
		{"Tin", []int{50}},
		{"carbon", []int{6}},
	}
	for _, tt := range tests {
		t.Run(tt.buffer, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSet(elements, tt.buffer))
		})
	}
}

func TestMatchSetSubstring(t *testing.T) {
	elements := loadElements(t)

	matches := MatchSet(elements, "on")
	assert.Greater(t, len(matches), 5)
	for _, n := range matches {
		assert.Contains(t, elements[n-1].Name, "on")
	}
	assert.Contains(t, matches, 5)  // Boron
	assert.Contains(t, matches, 10) // Neon
	assert.NotContains(t, matches, 1)
}

func TestMatcher(t *testing.T) {
	assert.Nil(t, newMatcher(""))

	m := newMatcher("IRON")
	assert.True(t, m.matches("Iron"))
	assert.False(t, m.matches("Nickel"))
}
