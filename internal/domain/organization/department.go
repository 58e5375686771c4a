package organization

import (
	"strings"
	"time"
)

type Department struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewDepartment(name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrDepartmentNameRequired
	}
	now := time.Now().UTC()
	return &Department{name: name, createdAt: now, updatedAt: now}, nil
}

func ReconstructDepartment(id uint, name string, createdAt, updatedAt time.Time) *Department {
	return &Department{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (d *Department) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDepartmentNameRequired
	}
	d.name = name
	d.updatedAt = time.Now().UTC()
	return nil
}

func (d *Department) ID() uint             { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) SetID(id uint) error {
	return setID(&d.id, id, "department")
}
