package mappers

import (
	"art/internal/domain/catalog"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/constants"
)

var catalogTables = map[catalog.Level]string{
	catalog.LevelCategory:    constants.TableAssetCategories,
	catalog.LevelSubCategory: constants.TableAssetSubCategories,
	catalog.LevelType:        constants.TableAssetTypes,
	catalog.LevelMake:        constants.TableAssetMakes,
	catalog.LevelModelNumber: constants.TableAssetModelNumbers,
}

// CatalogTable returns the table backing a catalog level.
func CatalogTable(level catalog.Level) string {
	return catalogTables[level]
}

// CatalogMapper handles the conversion between catalog items and rows.
type CatalogMapper interface {
	ToModel(item *catalog.Item) *models.CatalogItemModel
	ToEntity(level catalog.Level, model *models.CatalogItemModel) (*catalog.Item, error)
	ToEntities(level catalog.Level, models []models.CatalogItemModel) ([]*catalog.Item, error)
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) ToModel(item *catalog.Item) *models.CatalogItemModel {
	if item == nil {
		return nil
	}
	return &models.CatalogItemModel{
		ID:        item.ID(),
		Name:      item.Name(),
		ParentID:  item.ParentID(),
		CreatedAt: item.CreatedAt(),
		UpdatedAt: item.UpdatedAt(),
	}
}

func (m *CatalogMapperImpl) ToEntity(level catalog.Level, model *models.CatalogItemModel) (*catalog.Item, error) {
	if model == nil {
		return nil, nil
	}
	return catalog.ReconstructItem(model.ID, level, model.Name, model.ParentID, model.CreatedAt, model.UpdatedAt)
}

func (m *CatalogMapperImpl) ToEntities(level catalog.Level, rows []models.CatalogItemModel) ([]*catalog.Item, error) {
	items := make([]*catalog.Item, 0, len(rows))
	for i := range rows {
		item, err := m.ToEntity(level, &rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
