// Package element holds the periodic table data model and its JSON loader.
//
// Elements are immutable once loaded. A Dataset is addressed by 1-based
// atomic number; lookups never panic on out-of-range numbers.
package element

import "strings"

// Category is the chemical category of an element as it appears in the dataset.
type Category string

// Known categories. Datasets also carry speculative variants such as
// "unknown, probably transition metal"; see Category.IsUnknown.
const (
	DiatomicNonmetal    Category = "diatomic nonmetal"
	NobleGas            Category = "noble gas"
	AlkaliMetal         Category = "alkali metal"
	AlkalineEarthMetal  Category = "alkaline earth metal"
	Metalloid           Category = "metalloid"
	PolyatomicNonmetal  Category = "polyatomic nonmetal"
	PostTransitionMetal Category = "post-transition metal"
	TransitionMetal     Category = "transition metal"
	Lanthanide          Category = "lanthanide"
	Actinide            Category = "actinide"
)

// KnownCategories lists the ten categories in the order they are documented.
var KnownCategories = []Category{
	DiatomicNonmetal,
	NobleGas,
	AlkaliMetal,
	AlkalineEarthMetal,
	Metalloid,
	PolyatomicNonmetal,
	PostTransitionMetal,
	TransitionMetal,
	Lanthanide,
	Actinide,
}

// IsUnknown reports whether the category is one of the speculative "unknown" variants.
func (c Category) IsUnknown() bool {
	return strings.Contains(string(c), "unknown")
}

// Caption returns the category text to show inside a table cell.
// Unknown variants collapse to "unknown" because the full text overflows the cell.
func (c Category) Caption() string {
	if c.IsUnknown() {
		return "unknown"
	}
	return string(c)
}

// Phase is the state of matter at standard conditions.
type Phase string

const (
	Solid  Phase = "Solid"
	Liquid Phase = "Liquid"
	Gas    Phase = "Gas"
)

// IsGas reports whether the phase is gaseous. Both "Gas" and "Gaseous" are accepted.
func (p Phase) IsGas() bool {
	return strings.EqualFold(string(p), "gas") || strings.EqualFold(string(p), "gaseous")
}

// Adjective returns the phase as used in front of a category, e.g. "Gaseous noble gas".
func (p Phase) Adjective() string {
	switch {
	case p.IsGas():
		return "Gaseous"
	case p == "":
		return "Unknown"
	default:
		return string(p)
	}
}

// Image describes the illustrative photo associated with an element. The
// photo itself is looked up locally by element name.
type Image struct {
	Title       string `json:"title"`
	Attribution string `json:"attribution"`
}

// Element is a single entry of the periodic table.
// Optional numeric properties are nil when the dataset has no value.
type Element struct {
	Number   int      `json:"number"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Group    int      `json:"group"`
	Period   int      `json:"period"`
	Block    string   `json:"block"`
	Phase    Phase    `json:"phase"`
	Category Category `json:"category"`

	Appearance string `json:"appearance"`
	Summary    string `json:"summary"`

	AtomicMass        float64  `json:"atomic_mass"`
	Boil              *float64 `json:"boil"`
	Melt              *float64 `json:"melt"`
	Density           *float64 `json:"density"`
	MolarHeat         *float64 `json:"molar_heat"`
	Electronegativity *float64 `json:"electronegativity_pauling"`
	ElectronAffinity  *float64 `json:"electron_affinity"`

	IonizationEnergies            []float64 `json:"ionization_energies"`
	Shells                        []int     `json:"shells"`
	ElectronConfigurationSemantic string    `json:"electron_configuration_semantic"`

	Image          Image  `json:"image"`
	BohrModelImage string `json:"bohr_model_image"`
}

// MaxIonizationEnergies is how many ionization energies the detail view shows.
const MaxIonizationEnergies = 10

// DisplayIonizationEnergies returns at most the first MaxIonizationEnergies values.
func (e Element) DisplayIonizationEnergies() []float64 {
	if len(e.IonizationEnergies) > MaxIonizationEnergies {
		return e.IonizationEnergies[:MaxIonizationEnergies]
	}
	return e.IonizationEnergies
}

// ValenceElectrons returns the occupancy of the outermost shell, or 0 without shell data.
func (e Element) ValenceElectrons() int {
	if len(e.Shells) == 0 {
		return 0
	}
	return e.Shells[len(e.Shells)-1]
}

// IsHelium reports whether this is helium, whose full first shell is drawn as a single pair.
func (e Element) IsHelium() bool {
	return e.Number == 2
}

// Neutrons returns the neutron count from the lookup table, or 0 when the
// atomic number is outside it.
func (e Element) Neutrons() int {
	n, _ := Neutrons(e.Number)
	return n
}

// Dataset is the ordered list of elements, index i holding atomic number i+1.
type Dataset struct {
	Elements []Element
}

// Len returns the number of elements.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Elements)
}

// ByNumber returns the element with the given 1-based atomic number.
func (d *Dataset) ByNumber(number int) (Element, bool) {
	if d == nil || number < 1 || number > len(d.Elements) {
		return Element{}, false
	}
	return d.Elements[number-1], true
}
