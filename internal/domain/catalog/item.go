package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNameRequired   = errors.New("name is required")
	ErrParentRequired = errors.New("parent is required")
	ErrRootHasParent  = errors.New("a category cannot have a parent")
)

const maxNameLength = 255

// NormalizeName trims, collapses inner whitespace and title-cases a name.
// Two names that normalise to the same value are duplicates at a level.
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return cases.Title(language.English).String(strings.Join(fields, " "))
}

// Item is one node of the taxonomy. Every level except Category has a parent
// in the level directly above.
type Item struct {
	id        uint
	level     Level
	name      string
	parentID  *uint
	createdAt time.Time
	updatedAt time.Time
}

func NewItem(level Level, name string, parentID *uint) (*Item, error) {
	if !level.IsValid() {
		return nil, fmt.Errorf("invalid catalog level: %q", level)
	}
	normalized, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if level.IsRoot() {
		if parentID != nil {
			return nil, ErrRootHasParent
		}
	} else if parentID == nil || *parentID == 0 {
		return nil, ErrParentRequired
	}

	now := time.Now().UTC()
	return &Item{
		level:     level,
		name:      normalized,
		parentID:  parentID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructItem(id uint, level Level, name string, parentID *uint, createdAt, updatedAt time.Time) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("%s ID cannot be zero", level.Label())
	}
	if !level.IsValid() {
		return nil, fmt.Errorf("invalid catalog level: %q", level)
	}
	return &Item{
		id:        id,
		level:     level,
		name:      name,
		parentID:  parentID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func validateName(name string) (string, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return "", ErrNameRequired
	}
	if len(normalized) > maxNameLength {
		return "", fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	return normalized, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) Level() Level {
	return i.level
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) ParentID() *uint {
	return i.parentID
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("%s ID is already set", i.level.Label())
	}
	if id == 0 {
		return fmt.Errorf("%s ID cannot be zero", i.level.Label())
	}
	i.id = id
	return nil
}

// Rename applies the same normalisation as NewItem.
func (i *Item) Rename(name string) error {
	normalized, err := validateName(name)
	if err != nil {
		return err
	}
	if normalized == i.name {
		return nil
	}
	i.name = normalized
	i.updatedAt = time.Now().UTC()
	return nil
}
