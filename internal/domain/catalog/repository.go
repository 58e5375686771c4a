package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, level Level, id uint) error
	// GetByID returns nil when no row exists.
	GetByID(ctx context.Context, level Level, id uint) (*Item, error)
	// GetByName matches case-insensitively. Returns nil when no row exists.
	GetByName(ctx context.Context, level Level, name string) (*Item, error)
	List(ctx context.Context, filter Filter) ([]*Item, int64, error)
	// CountChildren counts rows of the level below that reference id.
	CountChildren(ctx context.Context, level Level, id uint) (int64, error)
}

type Filter struct {
	Level    Level
	ParentID *uint
	Search   string
	Page     int
	PageSize int
}
