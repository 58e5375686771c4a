package usecases

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/catalog"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/mapper"
)

const registerPageSize = 200

// AssetRegisterUseCase flattens every asset matching a filter into register
// lines with the catalog path and owner name spelled out.
type AssetRegisterUseCase struct {
	assets    asset.Repository
	catalog   catalog.Repository
	assignees AssigneeResolver
	logger    logger.Interface
}

func NewAssetRegisterUseCase(
	assets asset.Repository,
	catalogRepo catalog.Repository,
	assignees AssigneeResolver,
	logger logger.Interface,
) *AssetRegisterUseCase {
	return &AssetRegisterUseCase{
		assets:    assets,
		catalog:   catalogRepo,
		assignees: assignees,
		logger:    logger,
	}
}

func (uc *AssetRegisterUseCase) Execute(ctx context.Context, query ListAssetsQuery) ([]*dto.RegisterEntryDTO, error) {
	filter := asset.Filter{
		ModelNumberID: query.ModelNumberID,
		AssignedToID:  query.AssignedToID,
		Verified:      query.Verified,
		Search:        query.Search,
		PageSize:      registerPageSize,
	}
	if query.Status != "" {
		status, err := vo.ParseAssetStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), "status")
		}
		filter.Status = &status
	}

	names := newRegisterNames(uc.catalog, uc.assignees, uc.logger)
	var entries []*dto.RegisterEntryDTO
	for page := 1; ; page++ {
		filter.Page = page
		assets, total, err := uc.assets.List(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to list assets for register", "page", page, "error", err)
			return nil, err
		}
		for _, a := range assets {
			entry, err := names.entry(ctx, a)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		if len(assets) == 0 || int64(len(entries)) >= total {
			break
		}
	}

	uc.logger.Infow("asset register built", "entries", len(entries))
	return entries, nil
}

// registerNames caches lookups for the lifetime of one export.
type registerNames struct {
	catalog   catalog.Repository
	assignees AssigneeResolver
	logger    logger.Interface
	items     map[catalog.Level]map[uint]*catalog.Item
	owners    map[uint]string
}

func newRegisterNames(catalogRepo catalog.Repository, assignees AssigneeResolver, log logger.Interface) *registerNames {
	return &registerNames{
		catalog:   catalogRepo,
		assignees: assignees,
		logger:    log,
		items:     make(map[catalog.Level]map[uint]*catalog.Item),
		owners:    make(map[uint]string),
	}
}

func (n *registerNames) entry(ctx context.Context, a *asset.Asset) (*dto.RegisterEntryDTO, error) {
	path, err := n.path(ctx, a.ModelNumberID())
	if err != nil {
		return nil, err
	}

	out := &dto.RegisterEntryDTO{
		UUID:          a.UUID(),
		AssetCode:     mapper.Deref(a.AssetCode()),
		SerialNumber:  mapper.Deref(a.SerialNumber()),
		Category:      path[catalog.LevelCategory],
		SubCategory:   path[catalog.LevelSubCategory],
		Type:          path[catalog.LevelType],
		Make:          path[catalog.LevelMake],
		ModelNumber:   path[catalog.LevelModelNumber],
		CurrentStatus: a.CurrentStatus().String(),
		Verified:      a.Verified(),
		Notes:         a.Notes(),
		CreatedAt:     a.CreatedAt(),
	}
	if d := a.PurchaseDate(); d != nil {
		out.PurchaseDate = d.Format(dto.DateLayout)
	}
	if owner := a.AssignedToID(); owner != nil {
		out.AssignedTo = n.owner(ctx, *owner)
	}
	return out, nil
}

// path walks from the model number up to the category.
func (n *registerNames) path(ctx context.Context, modelNumberID uint) (map[catalog.Level]string, error) {
	path := make(map[catalog.Level]string, len(catalog.Levels()))
	level, id := catalog.LevelModelNumber, &modelNumberID
	for id != nil {
		item, err := n.item(ctx, level, *id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			break
		}
		path[level] = item.Name()

		parent, ok := level.Parent()
		if !ok {
			break
		}
		level, id = parent, item.ParentID()
	}
	return path, nil
}

func (n *registerNames) item(ctx context.Context, level catalog.Level, id uint) (*catalog.Item, error) {
	byID, ok := n.items[level]
	if !ok {
		byID = make(map[uint]*catalog.Item)
		n.items[level] = byID
	}
	if item, ok := byID[id]; ok {
		return item, nil
	}
	item, err := n.catalog.GetByID(ctx, level, id)
	if err != nil {
		return nil, err
	}
	byID[id] = item
	return item, nil
}

func (n *registerNames) owner(ctx context.Context, assigneeID uint) string {
	if name, ok := n.owners[assigneeID]; ok {
		return name
	}
	resolved, err := n.assignees.Resolve(ctx, assigneeID)
	name := ""
	if err != nil {
		n.logger.Warnw("failed to resolve asset owner", "assignee_id", assigneeID, "error", err)
	} else {
		name = resolved.Name
	}
	n.owners[assigneeID] = name
	return name
}
