package dto

import (
	"time"

	"art/internal/domain/catalog"
	"art/internal/shared/mapper"
)

type CatalogItemDTO struct {
	ID        uint      `json:"id"`
	Level     string    `json:"level"`
	Name      string    `json:"name"`
	ParentID  *uint     `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCatalogItemRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

type UpdateCatalogItemRequest struct {
	Name string `json:"name" binding:"required"`
}

func ToCatalogItemDTO(item *catalog.Item) *CatalogItemDTO {
	if item == nil {
		return nil
	}
	return &CatalogItemDTO{
		ID:        item.ID(),
		Level:     item.Level().String(),
		Name:      item.Name(),
		ParentID:  item.ParentID(),
		CreatedAt: item.CreatedAt(),
		UpdatedAt: item.UpdatedAt(),
	}
}

func ToCatalogItemDTOs(items []*catalog.Item) []*CatalogItemDTO {
	return mapper.MapSlice(items, ToCatalogItemDTO)
}
