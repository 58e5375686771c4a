package usecases

import (
	"context"

	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
)

type mockSpecsRepository struct {
	CreateFunc     func(ctx context.Context, s *asset.Specs) error
	DeleteFunc     func(ctx context.Context, id uint) error
	GetByIDFunc    func(ctx context.Context, id uint) (*asset.Specs, error)
	GetByTupleFunc func(ctx context.Context, tuple asset.SpecsTuple) (*asset.Specs, error)
	ListFunc       func(ctx context.Context, page, pageSize int) ([]*asset.Specs, int64, error)
}

func (m *mockSpecsRepository) Create(ctx context.Context, s *asset.Specs) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return s.SetID(1)
}

func (m *mockSpecsRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSpecsRepository) GetByID(ctx context.Context, id uint) (*asset.Specs, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSpecsRepository) GetByTuple(ctx context.Context, tuple asset.SpecsTuple) (*asset.Specs, error) {
	if m.GetByTupleFunc != nil {
		return m.GetByTupleFunc(ctx, tuple)
	}
	return nil, nil
}

func (m *mockSpecsRepository) List(ctx context.Context, page, pageSize int) ([]*asset.Specs, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

// mockAssetRepository implements only the counters; the remaining methods
// return zero values.
type mockAssetRepository struct {
	asset.Repository
	CountBySpecsFunc                func(ctx context.Context, specsID uint) (int64, error)
	CountByStatusAndModelNumberFunc func(ctx context.Context, status vo.AssetStatus, modelNumberID uint) (int64, error)
}

func (m *mockAssetRepository) CountBySpecs(ctx context.Context, specsID uint) (int64, error) {
	if m.CountBySpecsFunc != nil {
		return m.CountBySpecsFunc(ctx, specsID)
	}
	return 0, nil
}

func (m *mockAssetRepository) CountByStatusAndModelNumber(ctx context.Context, status vo.AssetStatus, modelNumberID uint) (int64, error) {
	if m.CountByStatusAndModelNumberFunc != nil {
		return m.CountByStatusAndModelNumberFunc(ctx, status, modelNumberID)
	}
	return 0, nil
}
