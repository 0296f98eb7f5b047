package element

// neutrons holds the neutron count of the most common isotope for
// atomic numbers 1..118, index z-1. The values are taken as given and
// are not derived from atomic mass.
var neutrons = [...]int{
	0, 2, 4, 5, 6, 6, 7, 8, 10, 10,
	12, 12, 14, 14, 16, 16, 18, 22, 20, 20,
	24, 26, 28, 28, 30, 30, 32, 31, 35, 35,
	39, 41, 42, 45, 45, 48, 48, 50, 50, 51,
	52, 54, 55, 57, 58, 60, 61, 64, 66, 69,
	71, 76, 74, 77, 78, 81, 82, 82, 82, 84,
	84, 88, 89, 93, 94, 97, 98, 99, 100, 103,
	104, 106, 108, 110, 111, 114, 115, 117, 118, 121,
	123, 125, 126, 125, 125, 136, 136, 138, 138, 142,
	140, 146, 144, 150, 148, 151, 150, 153, 153, 157,
	157, 157, 159, 157, 157, 157, 157, 157, 159, 161,
	161, 165, 170, 175, 175, 177, 177, 176,
}

// NeutronTableSize is the number of atomic numbers covered by Neutrons.
const NeutronTableSize = len(neutrons)

// Neutrons returns the neutron count for atomic number z.
// ok is false outside 1..NeutronTableSize.
func Neutrons(z int) (n int, ok bool) {
	if z < 1 || z > len(neutrons) {
		return 0, false
	}
	return neutrons[z-1], true
}
