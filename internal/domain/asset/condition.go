package asset

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrConditionNotesRequired = errors.New("condition notes are required")

// Condition is a dated note on the physical state of an asset. The latest
// condition's notes are mirrored onto Asset.notes.
type Condition struct {
	id        uint
	assetID   uint
	notes     string
	createdAt time.Time
}

func NewCondition(assetID uint, notes string) (*Condition, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, ErrConditionNotesRequired
	}
	return &Condition{assetID: assetID, notes: notes, createdAt: time.Now().UTC()}, nil
}

func ReconstructCondition(id, assetID uint, notes string, createdAt time.Time) *Condition {
	return &Condition{id: id, assetID: assetID, notes: notes, createdAt: createdAt}
}

func (c *Condition) ID() uint             { return c.id }
func (c *Condition) AssetID() uint        { return c.assetID }
func (c *Condition) Notes() string        { return c.notes }
func (c *Condition) CreatedAt() time.Time { return c.createdAt }

func (c *Condition) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("condition ID is already set")
	}
	c.id = id
	return nil
}
