package asset

import (
	"fmt"
	"strings"
	"time"
)

// SpecsTuple is the full set of hardware attributes. Two specs with the same
// tuple are duplicates.
type SpecsTuple struct {
	YearOfManufacture int
	ProcessorSpeed    string
	ScreenSize        string
	ProcessorType     string
	Storage           string
	Memory            string
}

// Normalized trims every text field.
func (t SpecsTuple) Normalized() SpecsTuple {
	return SpecsTuple{
		YearOfManufacture: t.YearOfManufacture,
		ProcessorSpeed:    strings.TrimSpace(t.ProcessorSpeed),
		ScreenSize:        strings.TrimSpace(t.ScreenSize),
		ProcessorType:     strings.TrimSpace(t.ProcessorType),
		Storage:           strings.TrimSpace(t.Storage),
		Memory:            strings.TrimSpace(t.Memory),
	}
}

// Specs is a shared hardware specification that many assets can reference.
type Specs struct {
	id        uint
	tuple     SpecsTuple
	createdAt time.Time
	updatedAt time.Time
}

const minManufactureYear = 1970

func NewSpecs(tuple SpecsTuple) (*Specs, error) {
	tuple = tuple.Normalized()
	if tuple.YearOfManufacture != 0 {
		maxYear := time.Now().UTC().Year() + 1
		if tuple.YearOfManufacture < minManufactureYear || tuple.YearOfManufacture > maxYear {
			return nil, fmt.Errorf("year of manufacture must be between %d and %d", minManufactureYear, maxYear)
		}
	}
	now := time.Now().UTC()
	return &Specs{tuple: tuple, createdAt: now, updatedAt: now}, nil
}

func ReconstructSpecs(id uint, tuple SpecsTuple, createdAt, updatedAt time.Time) *Specs {
	return &Specs{id: id, tuple: tuple, createdAt: createdAt, updatedAt: updatedAt}
}

func (s *Specs) ID() uint             { return s.id }
func (s *Specs) Tuple() SpecsTuple    { return s.tuple }
func (s *Specs) CreatedAt() time.Time { return s.createdAt }
func (s *Specs) UpdatedAt() time.Time { return s.updatedAt }

func (s *Specs) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("specs ID is already set")
	}
	s.id = id
	return nil
}
