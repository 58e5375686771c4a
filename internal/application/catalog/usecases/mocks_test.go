package usecases

import (
	"context"
	"strings"
	"time"

	"art/internal/domain/catalog"
)

type mockCatalogRepository struct {
	CreateFunc        func(ctx context.Context, item *catalog.Item) error
	UpdateFunc        func(ctx context.Context, item *catalog.Item) error
	DeleteFunc        func(ctx context.Context, level catalog.Level, id uint) error
	GetByIDFunc       func(ctx context.Context, level catalog.Level, id uint) (*catalog.Item, error)
	GetByNameFunc     func(ctx context.Context, level catalog.Level, name string) (*catalog.Item, error)
	ListFunc          func(ctx context.Context, filter catalog.Filter) ([]*catalog.Item, int64, error)
	CountChildrenFunc func(ctx context.Context, level catalog.Level, id uint) (int64, error)
}

func (m *mockCatalogRepository) Create(ctx context.Context, item *catalog.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *mockCatalogRepository) Update(ctx context.Context, item *catalog.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockCatalogRepository) Delete(ctx context.Context, level catalog.Level, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, level, id)
	}
	return nil
}

func (m *mockCatalogRepository) GetByID(ctx context.Context, level catalog.Level, id uint) (*catalog.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, level, id)
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetByName(ctx context.Context, level catalog.Level, name string) (*catalog.Item, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, level, name)
	}
	return nil, nil
}

func (m *mockCatalogRepository) List(ctx context.Context, filter catalog.Filter) ([]*catalog.Item, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCatalogRepository) CountChildren(ctx context.Context, level catalog.Level, id uint) (int64, error) {
	if m.CountChildrenFunc != nil {
		return m.CountChildrenFunc(ctx, level, id)
	}
	return 0, nil
}

// memoryCatalog is a tiny in-memory store used where a test needs several
// levels to interact.
type memoryCatalog struct {
	nextID uint
	items  map[catalog.Level][]*catalog.Item
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{items: map[catalog.Level][]*catalog.Item{}}
}

func (m *memoryCatalog) repo() *mockCatalogRepository {
	return &mockCatalogRepository{
		CreateFunc: func(ctx context.Context, item *catalog.Item) error {
			m.nextID++
			if err := item.SetID(m.nextID); err != nil {
				return err
			}
			m.items[item.Level()] = append(m.items[item.Level()], item)
			return nil
		},
		GetByIDFunc: func(ctx context.Context, level catalog.Level, id uint) (*catalog.Item, error) {
			for _, item := range m.items[level] {
				if item.ID() == id {
					return item, nil
				}
			}
			return nil, nil
		},
		GetByNameFunc: func(ctx context.Context, level catalog.Level, name string) (*catalog.Item, error) {
			for _, item := range m.items[level] {
				if strings.EqualFold(item.Name(), strings.TrimSpace(name)) {
					return item, nil
				}
			}
			return nil, nil
		},
	}
}

func reconstructItem(id uint, level catalog.Level, name string, parentID *uint) *catalog.Item {
	item, err := catalog.ReconstructItem(id, level, name, parentID, time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return item
}
