package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"art/internal/application/catalog/dto"
	"art/internal/application/catalog/usecases"
	"art/internal/domain/catalog"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

// catalogService is satisfied by *catalog.ServiceDDD.
type catalogService interface {
	Create(ctx context.Context, cmd usecases.CreateCatalogItemCommand) (*dto.CatalogItemDTO, error)
	Update(ctx context.Context, cmd usecases.UpdateCatalogItemCommand) (*dto.CatalogItemDTO, error)
	Delete(ctx context.Context, level catalog.Level, id uint) error
	Get(ctx context.Context, level catalog.Level, id uint) (*dto.CatalogItemDTO, error)
	List(ctx context.Context, query usecases.ListCatalogItemsQuery) (*usecases.ListCatalogItemsResult, error)
}

// catalogSegments maps the URL segment of each taxonomy level.
var catalogSegments = map[string]catalog.Level{
	"categories":     catalog.LevelCategory,
	"sub-categories": catalog.LevelSubCategory,
	"types":          catalog.LevelType,
	"makes":          catalog.LevelMake,
	"model-numbers":  catalog.LevelModelNumber,
}

// CatalogHandler serves /catalog/:level for all five taxonomy levels.
type CatalogHandler struct {
	catalog catalogService
	logger  logger.Interface
}

func NewCatalogHandler(catalog catalogService, log logger.Interface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: log}
}

// Create handles POST /catalog/:level
func (h *CatalogHandler) Create(c *gin.Context) {
	level, err := parseCatalogLevel(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create catalog item", "level", level, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.catalog.Create(c.Request.Context(), usecases.CreateCatalogItemCommand{
		Level:    level,
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Catalog item created successfully")
}

// Get handles GET /catalog/:level/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	level, id, err := parseCatalogItem(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.catalog.Get(c.Request.Context(), level, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /catalog/:level?parent_id=&search=
func (h *CatalogHandler) List(c *gin.Context) {
	level, err := parseCatalogLevel(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	parentID, err := utils.ParseOptionalUintQuery(c, "parent_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.catalog.List(c.Request.Context(), usecases.ListCatalogItemsQuery{
		Level:    level,
		ParentID: parentID,
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.Size)
}

// Update handles PUT /catalog/:level/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	level, id, err := parseCatalogItem(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.catalog.Update(c.Request.Context(), usecases.UpdateCatalogItemCommand{
		Level: level,
		ID:    id,
		Name:  req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Catalog item updated successfully", result)
}

// Delete handles DELETE /catalog/:level/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	level, id, err := parseCatalogItem(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), level, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseCatalogLevel(c *gin.Context) (catalog.Level, error) {
	level, ok := catalogSegments[c.Param("level")]
	if !ok {
		return "", errors.NewNotFoundError("unknown catalog level", c.Param("level"))
	}
	return level, nil
}

func parseCatalogItem(c *gin.Context) (catalog.Level, uint, error) {
	level, err := parseCatalogLevel(c)
	if err != nil {
		return "", 0, err
	}
	id, err := utils.ParseIDParam(c, "id", level.Label())
	if err != nil {
		return "", 0, err
	}
	return level, id, nil
}
