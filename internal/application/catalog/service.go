package catalog

import (
	"context"

	"art/internal/application/catalog/dto"
	"art/internal/application/catalog/usecases"
	"art/internal/domain/catalog"
	"art/internal/shared/logger"
)

type ServiceDDD struct {
	createItem  *usecases.CreateCatalogItemUseCase
	updateItem  *usecases.UpdateCatalogItemUseCase
	deleteItem  *usecases.DeleteCatalogItemUseCase
	getItem     *usecases.GetCatalogItemUseCase
	listItems   *usecases.ListCatalogItemsUseCase
	ensureChain *usecases.EnsureCatalogChainUseCase
}

func NewServiceDDD(repo catalog.Repository, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		createItem:  usecases.NewCreateCatalogItemUseCase(repo, logger),
		updateItem:  usecases.NewUpdateCatalogItemUseCase(repo, logger),
		deleteItem:  usecases.NewDeleteCatalogItemUseCase(repo, logger),
		getItem:     usecases.NewGetCatalogItemUseCase(repo, logger),
		listItems:   usecases.NewListCatalogItemsUseCase(repo, logger),
		ensureChain: usecases.NewEnsureCatalogChainUseCase(repo, logger),
	}
}

func (s *ServiceDDD) Create(ctx context.Context, cmd usecases.CreateCatalogItemCommand) (*dto.CatalogItemDTO, error) {
	return s.createItem.Execute(ctx, cmd)
}

func (s *ServiceDDD) Update(ctx context.Context, cmd usecases.UpdateCatalogItemCommand) (*dto.CatalogItemDTO, error) {
	return s.updateItem.Execute(ctx, cmd)
}

func (s *ServiceDDD) Delete(ctx context.Context, level catalog.Level, id uint) error {
	return s.deleteItem.Execute(ctx, level, id)
}

func (s *ServiceDDD) Get(ctx context.Context, level catalog.Level, id uint) (*dto.CatalogItemDTO, error) {
	return s.getItem.Execute(ctx, level, id)
}

func (s *ServiceDDD) List(ctx context.Context, query usecases.ListCatalogItemsQuery) (*usecases.ListCatalogItemsResult, error) {
	return s.listItems.Execute(ctx, query)
}

// EnsureChain returns the model number id for path, creating missing nodes.
func (s *ServiceDDD) EnsureChain(ctx context.Context, path usecases.CatalogPath) (uint, error) {
	return s.ensureChain.Execute(ctx, path)
}
