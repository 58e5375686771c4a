package models

import (
	"time"

	"art/internal/shared/constants"
)

// CatalogItemModel is the shared row shape of the five catalog tables. The
// repository selects the table per level with db.Table.
type CatalogItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	ParentID  *uint     `gorm:"index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// The per-level types only exist so AutoMigrate creates one table (and one
// set of index names) per level.

type AssetCategoryModel struct{ CatalogItemModel }

func (AssetCategoryModel) TableName() string { return constants.TableAssetCategories }

type AssetSubCategoryModel struct{ CatalogItemModel }

func (AssetSubCategoryModel) TableName() string { return constants.TableAssetSubCategories }

type AssetTypeModel struct{ CatalogItemModel }

func (AssetTypeModel) TableName() string { return constants.TableAssetTypes }

type AssetMakeModel struct{ CatalogItemModel }

func (AssetMakeModel) TableName() string { return constants.TableAssetMakes }

type AssetModelNumberModel struct{ CatalogItemModel }

func (AssetModelNumberModel) TableName() string { return constants.TableAssetModelNumbers }
