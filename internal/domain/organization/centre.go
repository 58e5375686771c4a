// Package organization holds the physical and organisational hierarchy that
// assets are allocated within: centres, office floors, workspaces,
// departments and users.
package organization

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrCentreNameRequired     = errors.New("centre name is required")
	ErrCountryRequired        = errors.New("country is required")
	ErrDepartmentNameRequired = errors.New("department name is required")
	ErrWorkspaceNameRequired  = errors.New("workspace name is required")
	ErrFloorNumberNegative    = errors.New("floor number cannot be negative")
	ErrCentreRequired         = errors.New("centre is required")
	ErrFloorRequired          = errors.New("floor is required")
)

type Centre struct {
	id        uint
	name      string
	country   string
	createdAt time.Time
	updatedAt time.Time
}

func NewCentre(name, country string) (*Centre, error) {
	c := &Centre{}
	if err := c.apply(name, country); err != nil {
		return nil, err
	}
	c.createdAt = c.updatedAt
	return c, nil
}

func ReconstructCentre(id uint, name, country string, createdAt, updatedAt time.Time) *Centre {
	return &Centre{id: id, name: name, country: country, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *Centre) apply(name, country string) error {
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)
	if name == "" {
		return ErrCentreNameRequired
	}
	if country == "" {
		return ErrCountryRequired
	}
	c.name = name
	c.country = country
	c.updatedAt = time.Now().UTC()
	return nil
}

// Update replaces the editable fields.
func (c *Centre) Update(name, country string) error {
	return c.apply(name, country)
}

func (c *Centre) ID() uint             { return c.id }
func (c *Centre) Name() string         { return c.name }
func (c *Centre) Country() string      { return c.country }
func (c *Centre) CreatedAt() time.Time { return c.createdAt }
func (c *Centre) UpdatedAt() time.Time { return c.updatedAt }

func (c *Centre) SetID(id uint) error {
	return setID(&c.id, id, "centre")
}

func setID(dst *uint, id uint, entity string) error {
	if *dst != 0 {
		return fmt.Errorf("%s ID is already set", entity)
	}
	if id == 0 {
		return fmt.Errorf("%s ID cannot be zero", entity)
	}
	*dst = id
	return nil
}
