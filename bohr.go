package periodic

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/go-theft-auto/periodic/element"
)

// MaxShells is the number of electron rings a Bohr diagram can show.
const MaxShells = 7

// Animation speeds in radians per second.
const (
	nucleusSpin    float32 = 0.15
	electronSpin   float32 = 1.2
	shellSpinDecay float32 = 0.8
)

// goldenAngle is the phyllotaxis angle increment, pi*(3-sqrt(5)).
var goldenAngle = math32.Pi * (3 - math32.Sqrt(5))

// Nucleon is a proton or neutron marker, positioned relative to the
// center of the nucleus.
type Nucleon struct {
	Pos    Vec2
	Proton bool
}

// Nucleons lays out protons and neutrons on a sunflower spiral filling a
// disc of the given radius. Nucleon i sits at radius R*sqrt(i/n) and angle
// i*goldenAngle, turned by the slow spin accumulated over clock. Protons
// and neutrons alternate, starting with a proton, until one kind runs out.
func Nucleons(protons, neutrons int, radius float32, clock time.Duration) []Nucleon {
	protons, neutrons = max(protons, 0), max(neutrons, 0)
	n := protons + neutrons
	if n == 0 {
		return nil
	}

	spin := nucleusSpin * float32(clock.Seconds())
	out := make([]Nucleon, n)
	proton := true
	for i := range out {
		r := radius * math32.Sqrt(float32(i)/float32(n))
		a := float32(i)*goldenAngle + spin

		isProton := (proton && protons > 0) || neutrons == 0
		if isProton {
			protons--
		} else {
			neutrons--
		}
		proton = !proton

		out[i] = Nucleon{Pos: Vec2{X: r * math32.Cos(a), Y: r * math32.Sin(a)}, Proton: isProton}
	}
	return out
}

// nucleonSteps maps the highest atomic number of each step to the marker
// diameter as a fraction of the nucleus diameter.
var nucleonSteps = []struct {
	maxZ     int
	fraction float32
}{
	{2, 0.45},
	{10, 0.3},
	{18, 0.22},
	{36, 0.16},
	{54, 0.12},
	{86, 0.09},
}

const smallestNucleonFraction float32 = 0.075

// NucleonDiameter returns the marker diameter for atomic number z inside a
// nucleus of the given diameter. It shrinks in steps as z grows so heavy
// nuclei stay readable.
func NucleonDiameter(z int, nucleusDiameter float32) float32 {
	for _, s := range nucleonSteps {
		if z <= s.maxZ {
			return nucleusDiameter * s.fraction
		}
	}
	return nucleusDiameter * smallestNucleonFraction
}

// ElectronRing is one occupied shell and its electrons, positioned
// relative to the nucleus center.
type ElectronRing struct {
	Shell     int // 0 is the innermost shell
	Diameter  float32
	Electrons []Vec2
}

// Electrons places each shell's electrons evenly on its ring. Ring k has
// diameter base+step*k. Rings turn with the clock, alternating direction
// and slowing by a constant factor per shell. Shells past MaxShells are
// dropped.
func Electrons(shells []int, base, step float32, clock time.Duration) []ElectronRing {
	if len(shells) > MaxShells {
		shells = shells[:MaxShells]
	}

	t := float32(clock.Seconds())
	speed := electronSpin
	rings := make([]ElectronRing, 0, len(shells))
	for k, count := range shells {
		dir := float32(1)
		if k%2 == 1 {
			dir = -1
		}
		offset := dir * speed * t
		speed *= shellSpinDecay

		d := base + step*float32(k)
		ring := ElectronRing{Shell: k, Diameter: d, Electrons: make([]Vec2, 0, max(count, 0))}
		for j := 0; j < count; j++ {
			a := 2*math32.Pi*float32(j)/float32(count) + offset
			ring.Electrons = append(ring.Electrons, Vec2{X: d / 2 * math32.Cos(a), Y: d / 2 * math32.Sin(a)})
		}
		rings = append(rings, ring)
	}
	return rings
}

// ShellColor returns the electron color for shell k of count shells: the
// valence shell first, the three below it next, the rest share the last
// color.
func (s Style) ShellColor(k, count int) HSBA {
	depth := count - 1 - k
	if depth < 0 {
		depth = 0
	}
	if depth >= len(s.ElectronColors) {
		depth = len(s.ElectronColors) - 1
	}
	return s.ElectronColors[depth]
}

// drawBohr draws the animated Bohr diagram centered on center.
func drawBohr(ctx *Context, e element.Element, center Vec2) {
	st := ctx.Style()
	size := st.ElementSize
	dl := ctx.DrawList

	nucleusD := size * 0.7
	dl.AddCircle(center.X, center.Y, nucleusD/2, st.NucleusColor.Packed())

	markerR := NucleonDiameter(e.Number, nucleusD) / 2
	inner := nucleusD/2 - markerR
	proton, neutron := st.ProtonColor.Packed(), st.NeutronColor.Packed()
	for _, n := range Nucleons(e.Number, e.Neutrons(), inner, ctx.Clock) {
		c := neutron
		if n.Proton {
			c = proton
		}
		dl.AddCircle(center.X+n.Pos.X, center.Y+n.Pos.Y, markerR, c)
	}

	orbit := st.OrbitColor.Packed()
	electronR := size * 0.045
	rings := Electrons(e.Shells, nucleusD+size*0.25, size*0.3, ctx.Clock)
	for _, ring := range rings {
		dl.AddCircleOutline(center.X, center.Y, ring.Diameter/2, orbit, 1)
		c := st.ShellColor(ring.Shell, len(rings)).Packed()
		for _, p := range ring.Electrons {
			dl.AddCircle(center.X+p.X, center.Y+p.Y, electronR, c)
		}
	}
}
