package organization

import "context"

// ListFilter is shared by the organisation list queries. ParentID scopes
// floors by centre, workspaces by floor and users by department. Centre and
// department lists ignore it.
type ListFilter struct {
	ParentID *uint
	Search   string
	Page     int
	PageSize int
}

// The Get methods return nil, nil when the row does not exist.

type CentreRepository interface {
	Create(ctx context.Context, c *Centre) error
	Update(ctx context.Context, c *Centre) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Centre, error)
	GetByName(ctx context.Context, name string) (*Centre, error)
	List(ctx context.Context, filter ListFilter) ([]*Centre, int64, error)
	CountDependents(ctx context.Context, id uint) (int64, error)
}

type FloorRepository interface {
	Create(ctx context.Context, f *Floor) error
	Update(ctx context.Context, f *Floor) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Floor, error)
	GetByNumber(ctx context.Context, centreID uint, number int) (*Floor, error)
	List(ctx context.Context, filter ListFilter) ([]*Floor, int64, error)
	CountWorkspaces(ctx context.Context, id uint) (int64, error)
}

type WorkspaceRepository interface {
	Create(ctx context.Context, w *Workspace) error
	Update(ctx context.Context, w *Workspace) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Workspace, error)
	GetByName(ctx context.Context, floorID uint, name string) (*Workspace, error)
	List(ctx context.Context, filter ListFilter) ([]*Workspace, int64, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context, filter ListFilter) ([]*Department, int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}
