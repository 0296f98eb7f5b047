package element

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Dataset {
	t.Helper()
	ds, err := LoadFile("testdata/elements.json")
	require.NoError(t, err)
	return ds
}

func TestLoadFixture(t *testing.T) {
	ds := loadFixture(t)
	require.Equal(t, 118, ds.Len())

	carbon, ok := ds.ByNumber(6)
	require.True(t, ok)
	assert.Equal(t, "Carbon", carbon.Name)
	assert.Equal(t, "C", carbon.Symbol)
	assert.Equal(t, 14, carbon.Group)
	assert.Equal(t, 2, carbon.Period)
	assert.Equal(t, PolyatomicNonmetal, carbon.Category)
	assert.Equal(t, []int{2, 4}, carbon.Shells)
	assert.Equal(t, 4, carbon.ValenceElectrons())

	hydrogen, ok := ds.ByNumber(1)
	require.True(t, ok)
	require.NotNil(t, hydrogen.Density)
	assert.InDelta(t, 0.08988, *hydrogen.Density, 1e-9)
	assert.True(t, hydrogen.Phase.IsGas())

	// Nulls decode to nil pointers.
	oganesson, ok := ds.ByNumber(118)
	require.True(t, ok)
	assert.Nil(t, oganesson.Density)
	assert.Nil(t, oganesson.Boil)
	assert.True(t, oganesson.Category.IsUnknown())
}

func TestByNumberOutOfRange(t *testing.T) {
	ds := loadFixture(t)
	for _, n := range []int{-1, 0, 119, 1000} {
		_, ok := ds.ByNumber(n)
		assert.False(t, ok, "ByNumber(%d)", n)
	}

	var nilDS *Dataset
	_, ok := nilDS.ByNumber(1)
	assert.False(t, ok)
	assert.Equal(t, 0, nilDS.Len())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"empty", `{"elements": []}`, ErrEmptyDataset},
		{"missing key", `{}`, ErrEmptyDataset},
		{"out of order", `{"elements": [{"number": 2, "name": "Helium", "symbol": "He", "group": 18, "period": 1}]}`, ErrNumberMismatch},
		{"no symbol", `{"elements": [{"number": 1, "name": "Hydrogen", "group": 1, "period": 1}]}`, ErrInvalidElement},
		{"bad group", `{"elements": [{"number": 1, "name": "Hydrogen", "symbol": "H", "group": 0, "period": 1}]}`, ErrInvalidElement},
		{"bad period", `{"elements": [{"number": 1, "name": "Hydrogen", "symbol": "H", "group": 1, "period": 9}]}`, ErrInvalidElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.json))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"elements": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode elements")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	require.Error(t, err)
}

func TestDetachedElementsSkipGroupCheck(t *testing.T) {
	ds := loadFixture(t)
	// Lanthanides and actinides may carry any group; the layout remaps them.
	ds.Elements[57-1].Group = 0
	ds.Elements[89-1].Group = 0
	assert.NoError(t, ds.Validate())

	ds.Elements[56-1].Group = 0
	assert.ErrorIs(t, ds.Validate(), ErrInvalidElement)
}

func TestCategoryCaption(t *testing.T) {
	assert.Equal(t, "transition metal", TransitionMetal.Caption())
	assert.Equal(t, "unknown", Category("unknown, probably transition metal").Caption())
	assert.Equal(t, "unknown", Category("unknown, predicted to be noble gas").Caption())
	assert.False(t, NobleGas.IsUnknown())
	assert.Len(t, KnownCategories, 10)
}

func TestPhase(t *testing.T) {
	tests := []struct {
		phase     Phase
		gas       bool
		adjective string
	}{
		{Gas, true, "Gaseous"},
		{"Gaseous", true, "Gaseous"},
		{Solid, false, "Solid"},
		{Liquid, false, "Liquid"},
		{"", false, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.gas, tt.phase.IsGas(), "IsGas(%q)", tt.phase)
		assert.Equal(t, tt.adjective, tt.phase.Adjective(), "Adjective(%q)", tt.phase)
	}
}

func TestDisplayIonizationEnergies(t *testing.T) {
	ds := loadFixture(t)
	sodium, ok := ds.ByNumber(11)
	require.True(t, ok)
	require.Len(t, sodium.IonizationEnergies, 11)
	assert.Len(t, sodium.DisplayIonizationEnergies(), MaxIonizationEnergies)

	helium, _ := ds.ByNumber(2)
	assert.Len(t, helium.DisplayIonizationEnergies(), 2)
	assert.True(t, helium.IsHelium())
}

func TestNeutrons(t *testing.T) {
	assert.Equal(t, 118, NeutronTableSize)

	n, ok := Neutrons(1)
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	n, ok = Neutrons(6)
	assert.True(t, ok)
	assert.Equal(t, 6, n)

	n, ok = Neutrons(118)
	assert.True(t, ok)
	assert.Equal(t, 176, n)

	_, ok = Neutrons(0)
	assert.False(t, ok)
	_, ok = Neutrons(119)
	assert.False(t, ok)

	assert.Equal(t, 0, Element{Number: 119}.Neutrons())
	assert.Equal(t, 146, Element{Number: 92}.Neutrons())
}

func TestIsDetached(t *testing.T) {
	for z := 1; z <= 118; z++ {
		want := (z >= 57 && z <= 71) || (z >= 89 && z <= 103)
		assert.Equal(t, want, IsDetached(z), "z=%d", z)
	}
}
