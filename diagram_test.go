package periodic

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLewisDots(t *testing.T) {
	tests := []struct {
		valence int
		helium  bool
		want    LewisDiagram
	}{
		{0, false, LewisDiagram{}},
		{1, false, LewisDiagram{Top: 1}},
		{2, false, LewisDiagram{Top: 1, Right: 1}},
		{3, false, LewisDiagram{Top: 1, Right: 1, Bottom: 1}},
		{4, false, LewisDiagram{Top: 1, Right: 1, Bottom: 1, Left: 1}},
		{5, false, LewisDiagram{Top: 2, Right: 1, Bottom: 1, Left: 1}},
		{6, false, LewisDiagram{Top: 2, Right: 2, Bottom: 1, Left: 1}},
		{7, false, LewisDiagram{Top: 2, Right: 2, Bottom: 2, Left: 1}},
		{8, false, LewisDiagram{Top: 2, Right: 2, Bottom: 2, Left: 2}},
		{2, true, LewisDiagram{Top: 2}},
	}
	for _, tt := range tests {
		got := LewisDots(tt.valence, tt.helium)
		assert.Equal(t, tt.want, got, "valence %d helium %v", tt.valence, tt.helium)
		assert.Equal(t, tt.valence, got.Total())
	}
}

func TestLewisDotPositions(t *testing.T) {
	center := Vec2{X: 100, Y: 100}

	single := LewisDotPositions(LewisDiagram{Top: 1}, center, 20, 6)
	assert.Equal(t, []Vec2{{X: 100, Y: 80}}, single)

	full := LewisDotPositions(LewisDots(8, false), center, 20, 6)
	require.Len(t, full, 8)
	assert.Equal(t, Vec2{X: 97, Y: 80}, full[0])
	assert.Equal(t, Vec2{X: 103, Y: 80}, full[1])
	assert.Equal(t, Vec2{X: 120, Y: 97}, full[2])
	assert.Equal(t, Vec2{X: 80, Y: 103}, full[7])
}

func TestNucleons(t *testing.T) {
	assert.Nil(t, Nucleons(0, 0, 10, 0))

	hydrogen := Nucleons(1, 0, 10, 0)
	require.Len(t, hydrogen, 1)
	assert.True(t, hydrogen[0].Proton)
	assert.Equal(t, Vec2{}, hydrogen[0].Pos)

	carbon := Nucleons(6, 6, 10, 3*time.Second)
	require.Len(t, carbon, 12)
	protons := 0
	for i, n := range carbon {
		if n.Proton {
			protons++
		}
		assert.Equal(t, i%2 == 0, n.Proton, "nucleons alternate starting with a proton")
		assert.LessOrEqual(t, length(n.Pos), float32(10)+1e-4)
	}
	assert.Equal(t, 6, protons)

	// Once protons run out the rest are neutrons.
	lead := Nucleons(82, 126, 30, 0)
	protons = 0
	for _, n := range lead {
		if n.Proton {
			protons++
		}
	}
	assert.Equal(t, 82, protons)
	assert.False(t, lead[len(lead)-1].Proton)
}

func TestNucleusSpins(t *testing.T) {
	still := Nucleons(3, 4, 10, 0)
	moved := Nucleons(3, 4, 10, 2*time.Second)
	assert.Equal(t, still[0].Pos, moved[0].Pos)
	assert.NotEqual(t, still[1].Pos, moved[1].Pos)
	assert.InDelta(t, length(still[1].Pos), length(moved[1].Pos), 1e-4)
}

func TestNucleonDiameter(t *testing.T) {
	tests := []struct {
		z    int
		want float32
	}{
		{1, 45}, {2, 45},
		{3, 30}, {10, 30},
		{11, 22}, {18, 22},
		{19, 16}, {36, 16},
		{37, 12}, {54, 12},
		{55, 9}, {86, 9},
		{87, 7.5}, {118, 7.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NucleonDiameter(tt.z, 100), 1e-4, "Z=%d", tt.z)
	}
}

func TestElectrons(t *testing.T) {
	rings := Electrons([]int{2, 8, 14, 2}, 60, 25, time.Second)
	require.Len(t, rings, 4)

	counts := []int{2, 8, 14, 2}
	for k, ring := range rings {
		assert.Equal(t, k, ring.Shell)
		assert.InDelta(t, 60+25*float32(k), ring.Diameter, 1e-4)
		require.Len(t, ring.Electrons, counts[k])
		for _, p := range ring.Electrons {
			assert.InDelta(t, ring.Diameter/2, length(p), 1e-3)
		}
	}

	// Electrons on a shell are evenly spaced.
	a := rings[0].Electrons
	assert.InDelta(t, -a[0].X, a[1].X, 1e-3)
	assert.InDelta(t, -a[0].Y, a[1].Y, 1e-3)
}

func TestElectronsTruncatesShells(t *testing.T) {
	rings := Electrons([]int{2, 8, 18, 32, 32, 18, 8, 2}, 10, 10, 0)
	assert.Len(t, rings, MaxShells)
	assert.Empty(t, Electrons(nil, 10, 10, 0))
}

func TestShellColor(t *testing.T) {
	st := DefaultStyle()

	// Valence shell is always the first color.
	assert.Equal(t, st.ElectronColors[0], st.ShellColor(3, 4))
	assert.Equal(t, st.ElectronColors[0], st.ShellColor(0, 1))
	assert.Equal(t, st.ElectronColors[1], st.ShellColor(2, 4))
	assert.Equal(t, st.ElectronColors[4], st.ShellColor(0, 7))
	assert.Equal(t, st.ElectronColors[4], st.ShellColor(1, 7))
}

func TestVignetteRings(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 200, H: 100}
	rings := VignetteRings(r, VignetteRingCount)
	require.Len(t, rings, VignetteRingCount)

	for i := 1; i < len(rings); i++ {
		assert.GreaterOrEqual(t, rings[i].Alpha, rings[i-1].Alpha)
		assert.Greater(t, rings[i].Bounds.W, rings[i-1].Bounds.W)
	}
	assert.Zero(t, rings[0].Alpha)
	assert.InDelta(t, 100, rings[len(rings)-1].Alpha, 1e-4)

	last := rings[len(rings)-1].Bounds
	assert.InDelta(t, r.X, last.X, 1e-3)
	assert.InDelta(t, r.Y, last.Y, 1e-3)
	assert.InDelta(t, r.W, last.W, 1e-3)
	assert.InDelta(t, r.H, last.H, 1e-3)

	for _, ring := range rings {
		c := ring.Bounds.Center()
		assert.InDelta(t, r.Center().X, c.X, 1e-3)
		assert.InDelta(t, r.Center().Y, c.Y, 1e-3)
		assert.InDelta(t, float32(2.5+1), ring.Thickness, 1e-4)
	}
}

func TestVignetteRingsEmpty(t *testing.T) {
	assert.Nil(t, VignetteRings(Rect{W: 100, H: 100}, 0))
	assert.Nil(t, VignetteRings(Rect{W: 0, H: 100}, 10))
}

func length(v Vec2) float32 {
	return math32.Hypot(v.X, v.Y)
}
