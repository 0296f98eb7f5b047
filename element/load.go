package element

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrEmptyDataset is returned when the dataset holds no elements.
	ErrEmptyDataset = errors.New("element: empty dataset")

	// ErrInvalidElement is returned for an element missing required fields
	// or placed outside the grid.
	ErrInvalidElement = errors.New("element: invalid element")

	// ErrNumberMismatch is returned when an element's atomic number does not
	// match its position in the dataset.
	ErrNumberMismatch = errors.New("element: atomic number does not match position")
)

// Ranges that are drawn in the detached band below the main table.
// Their group is not used for placement and is not validated.
const (
	LanthanideFirst = 57
	LanthanideLast  = 71
	ActinideFirst   = 89
	ActinideLast    = 103
)

// MaxPeriod is the highest period accepted by the loader. Period 8 only
// appears in datasets that carry element 119.
const MaxPeriod = 8

// IsDetached reports whether atomic number z is placed in the lanthanide
// or actinide band.
func IsDetached(z int) bool {
	return (z >= LanthanideFirst && z <= LanthanideLast) || (z >= ActinideFirst && z <= ActinideLast)
}

type document struct {
	Elements []Element `json:"elements"`
}

// Load decodes a dataset in the {"elements": [...]} layout and validates it.
func Load(r io.Reader) (*Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}

	ds := &Dataset{Elements: doc.Elements}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// LoadFile opens path and loads the dataset from it.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// Validate checks that every element is placeable on the grid and that
// atomic numbers run 1..N in order.
func (d *Dataset) Validate() error {
	if d.Len() == 0 {
		return ErrEmptyDataset
	}

	for i, e := range d.Elements {
		if e.Number != i+1 {
			return fmt.Errorf("%w: position %d holds %d", ErrNumberMismatch, i+1, e.Number)
		}
		if e.Name == "" || e.Symbol == "" {
			return fmt.Errorf("%w: %d has no name or symbol", ErrInvalidElement, e.Number)
		}
		if e.Period < 1 || e.Period > MaxPeriod {
			return fmt.Errorf("%w: %s has period %d", ErrInvalidElement, e.Name, e.Period)
		}
		if !IsDetached(e.Number) && (e.Group < 1 || e.Group > 18) {
			return fmt.Errorf("%w: %s has group %d", ErrInvalidElement, e.Name, e.Group)
		}
	}
	return nil
}
