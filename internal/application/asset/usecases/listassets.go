package usecases

import (
	"context"
	"strings"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/assignee"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

type ListAssetsQuery struct {
	Status        string
	ModelNumberID *uint
	AssignedToID  *uint
	Verified      *bool
	Search        string
	Page          int
	PageSize      int
}

type ListAssetsResult struct {
	Assets []*dto.AssetDTO `json:"items"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Size   int             `json:"page_size"`
}

type ListAssetsUseCase struct {
	assets    asset.Repository
	assignees AssigneeResolver
	logger    logger.Interface
}

func NewListAssetsUseCase(assets asset.Repository, assignees AssigneeResolver, logger logger.Interface) *ListAssetsUseCase {
	return &ListAssetsUseCase{assets: assets, assignees: assignees, logger: logger}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := asset.Filter{
		ModelNumberID: query.ModelNumberID,
		AssignedToID:  query.AssignedToID,
		Verified:      query.Verified,
		Search:        strings.TrimSpace(query.Search),
		Page:          p.Page,
		PageSize:      p.PageSize,
	}
	if query.Status != "" {
		status, err := vo.ParseAssetStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), "status")
		}
		filter.Status = &status
	}

	assets, total, err := uc.assets.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, err
	}

	return &ListAssetsResult{
		Assets: dto.ToAssetDTOs(assets),
		Total:  total,
		Page:   p.Page,
		Size:   p.PageSize,
	}, nil
}

// ExecuteForOwner lists the assets currently assigned to the owner behind ref.
func (uc *ListAssetsUseCase) ExecuteForOwner(ctx context.Context, ref assignee.Ref, page, pageSize int) (*ListAssetsResult, error) {
	a, err := uc.assignees.Lookup(ctx, ref)
	if err != nil {
		return nil, err
	}
	id := a.ID()
	return uc.Execute(ctx, ListAssetsQuery{AssignedToID: &id, Page: page, PageSize: pageSize})
}
