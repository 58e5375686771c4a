package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

type SpecsHandler struct {
	specs  specsService
	logger logger.Interface
}

func NewSpecsHandler(specs specsService, log logger.Interface) *SpecsHandler {
	return &SpecsHandler{specs: specs, logger: log}
}

// CreateSpecs handles POST /specs
func (h *SpecsHandler) CreateSpecs(c *gin.Context) {
	var req dto.CreateSpecsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.specs.CreateSpecs(c.Request.Context(), asset.SpecsTuple{
		YearOfManufacture: req.YearOfManufacture,
		ProcessorSpeed:    req.ProcessorSpeed,
		ScreenSize:        req.ScreenSize,
		ProcessorType:     req.ProcessorType,
		Storage:           req.Storage,
		Memory:            req.Memory,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset specification created")
}

// GetSpecs handles GET /specs/:id
func (h *SpecsHandler) GetSpecs(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "specification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.specs.GetSpecs(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListSpecs handles GET /specs
func (h *SpecsHandler) ListSpecs(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.specs.ListSpecs(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.Size)
}

// DeleteSpecs handles DELETE /specs/:id
func (h *SpecsHandler) DeleteSpecs(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "specification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.specs.DeleteSpecs(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
