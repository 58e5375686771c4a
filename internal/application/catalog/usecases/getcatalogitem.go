package usecases

import (
	"context"

	"art/internal/application/catalog/dto"
	"art/internal/domain/catalog"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

type GetCatalogItemUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewGetCatalogItemUseCase(repo catalog.Repository, logger logger.Interface) *GetCatalogItemUseCase {
	return &GetCatalogItemUseCase{repo: repo, logger: logger}
}

func (uc *GetCatalogItemUseCase) Execute(ctx context.Context, level catalog.Level, id uint) (*dto.CatalogItemDTO, error) {
	item, err := getItem(ctx, uc.repo, level, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCatalogItemDTO(item), nil
}

type ListCatalogItemsQuery struct {
	Level    catalog.Level
	ParentID *uint
	Search   string
	Page     int
	PageSize int
}

type ListCatalogItemsResult struct {
	Items []*dto.CatalogItemDTO
	Total int64
	Page  int
	Size  int
}

type ListCatalogItemsUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewListCatalogItemsUseCase(repo catalog.Repository, logger logger.Interface) *ListCatalogItemsUseCase {
	return &ListCatalogItemsUseCase{repo: repo, logger: logger}
}

func (uc *ListCatalogItemsUseCase) Execute(ctx context.Context, query ListCatalogItemsQuery) (*ListCatalogItemsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	items, total, err := uc.repo.List(ctx, catalog.Filter{
		Level:    query.Level,
		ParentID: query.ParentID,
		Search:   query.Search,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list catalog items", "level", query.Level, "error", err)
		return nil, err
	}

	return &ListCatalogItemsResult{
		Items: dto.ToCatalogItemDTOs(items),
		Total: total,
		Page:  p.Page,
		Size:  p.PageSize,
	}, nil
}
