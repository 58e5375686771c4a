package organization

import (
	"strings"
	"time"
)

// Workspace is a named area on a floor (a desk cluster, a meeting room).
// Workspaces can own assets.
type Workspace struct {
	id        uint
	name      string
	floorID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewWorkspace(name string, floorID uint) (*Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrWorkspaceNameRequired
	}
	if floorID == 0 {
		return nil, ErrFloorRequired
	}
	now := time.Now().UTC()
	return &Workspace{name: name, floorID: floorID, createdAt: now, updatedAt: now}, nil
}

func ReconstructWorkspace(id uint, name string, floorID uint, createdAt, updatedAt time.Time) *Workspace {
	return &Workspace{id: id, name: name, floorID: floorID, createdAt: createdAt, updatedAt: updatedAt}
}

func (w *Workspace) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrWorkspaceNameRequired
	}
	w.name = name
	w.updatedAt = time.Now().UTC()
	return nil
}

func (w *Workspace) ID() uint             { return w.id }
func (w *Workspace) Name() string         { return w.name }
func (w *Workspace) FloorID() uint        { return w.floorID }
func (w *Workspace) CreatedAt() time.Time { return w.createdAt }
func (w *Workspace) UpdatedAt() time.Time { return w.updatedAt }

func (w *Workspace) SetID(id uint) error {
	return setID(&w.id, id, "workspace")
}
