package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"art/internal/application/asset/dto"
	"art/internal/application/asset/usecases"
	"art/internal/domain/assignee"
	"art/internal/infrastructure/export"
	"art/internal/interfaces/http/middleware"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

// AssetHandler serves the asset lifecycle endpoints: CRUD, the status and
// allocation ledgers, conditions, incidents and the register export.
type AssetHandler struct {
	assets assetService
	logger logger.Interface
	now    func() time.Time
}

func NewAssetHandler(assets assetService, log logger.Interface) *AssetHandler {
	return &AssetHandler{
		assets: assets,
		logger: log,
		now:    time.Now,
	}
}

// CreateAsset handles POST /assets
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create asset", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assets.CreateAsset(c.Request.Context(), usecases.CreateAssetCommand{
		AssetCode:     req.AssetCode,
		SerialNumber:  req.SerialNumber,
		ModelNumberID: req.ModelNumberID,
		Notes:         req.Notes,
		SpecsID:       req.SpecsID,
		PurchaseDate:  purchaseDate,
		Verified:      req.Verified,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset created successfully")
}

// GetAsset handles GET /assets/:id. The id may be the numeric id or the
// asset UUID.
func (h *AssetHandler) GetAsset(c *gin.Context) {
	raw := c.Param("id")

	var (
		result *dto.AssetDTO
		err    error
	)
	if strings.Contains(raw, "-") {
		result, err = h.assets.GetAssetByUUID(c.Request.Context(), raw)
	} else {
		var id uint
		id, err = utils.ParseIDParam(c, "id", "asset")
		if err == nil {
			result, err = h.assets.GetAsset(c.Request.Context(), id)
		}
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAssets handles GET /assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	query, err := parseListAssetsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assets.ListAssets(c.Request.Context(), *query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Assets, result.Total, result.Page, result.Size)
}

// UpdateAsset handles PATCH /assets/:id
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update asset", "asset_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	cmd := usecases.UpdateAssetCommand{
		ID:           id,
		AssetCode:    req.AssetCode,
		SerialNumber: req.SerialNumber,
		Notes:        req.Notes,
		SpecsID:      req.SpecsID,
		Verified:     req.Verified,
		Version:      req.Version,
	}
	if req.PurchaseDate != nil {
		cmd.PurchaseDate, err = parseDate(*req.PurchaseDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.assets.UpdateAsset(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset updated successfully", result)
}

// DeleteAsset handles DELETE /assets/:id
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.assets.DeleteAsset(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RecordStatus handles POST /assets/:id/status
func (h *AssetHandler) RecordStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RecordStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.assets.RecordStatus(c.Request.Context(), usecases.RecordStatusCommand{
		AssetID: id,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset status recorded")
}

// RecordAllocation handles POST /assets/:id/allocations. An empty body
// releases the asset.
func (h *AssetHandler) RecordAllocation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RecordAllocationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.BindError(err))
			return
		}
	}

	cmd := usecases.RecordAllocationCommand{AssetID: id, AssigneeID: req.AssigneeID}
	if req.AssigneeKind != "" {
		if req.AssigneeID != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(
				"give either assignee_id or assignee_kind with assignee_ref, not both", "assignee_id"))
			return
		}
		ref, err := assignee.NewRef(assignee.Kind(req.AssigneeKind), req.AssigneeRef)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error(), "assignee_ref"))
			return
		}
		cmd.AssigneeRef = &ref
	}

	result, err := h.assets.RecordAllocation(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset allocation recorded")
}

// StatusHistory handles GET /assets/:id/status
func (h *AssetHandler) StatusHistory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assets.StatusHistory(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AllocationHistory handles GET /assets/:id/allocations
func (h *AssetHandler) AllocationHistory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assets.AllocationHistory(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddCondition handles POST /assets/:id/conditions
func (h *AssetHandler) AddCondition(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AddConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.assets.AddCondition(c.Request.Context(), id, req.Notes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset condition recorded")
}

// ListConditions handles GET /assets/:id/conditions
func (h *AssetHandler) ListConditions(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assets.ListConditions(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReportIncident handles POST /assets/:id/incidents. The reporter is the
// authenticated user.
func (h *AssetHandler) ReportIncident(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ReportIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for report incident", "asset_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	cmd := usecases.ReportIncidentCommand{
		AssetID:                id,
		IncidentType:           req.IncidentType,
		Location:               req.IncidentLocation,
		Description:            req.IncidentDescription,
		InjuriesSustained:      req.InjuriesSustained,
		LossOfProperty:         req.LossOfProperty,
		Witnesses:              req.Witnesses,
		PoliceAbstractObtained: req.PoliceAbstractObtained,
		MarkAsset:              req.MarkAsset,
	}
	if userID, ok := middleware.CurrentUserID(c); ok {
		cmd.SubmittedByID = &userID
	}

	result, err := h.assets.ReportIncident(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Incident reported")
}

// ListIncidents handles GET /assets/:id/incidents
func (h *AssetHandler) ListIncidents(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assets.ListIncidents(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// StockSummary handles GET /assets/stock?model_number_id=
func (h *AssetHandler) StockSummary(c *gin.Context) {
	modelNumberID, err := utils.ParseOptionalUintQuery(c, "model_number_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if modelNumberID == nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("model_number_id is required", "model_number_id"))
		return
	}

	result, err := h.assets.StockSummary(c.Request.Context(), *modelNumberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOwnerAssets returns a handler for GET /<owners>/:id/assets.
func (h *AssetHandler) ListOwnerAssets(kind assignee.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id", string(kind))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		ref, err := assignee.NewRef(kind, id)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error(), "id"))
			return
		}

		p := utils.ParsePagination(c)
		result, err := h.assets.ListOwnerAssets(c.Request.Context(), ref, p.Page, p.PageSize)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.ListSuccessResponse(c, result.Assets, result.Total, result.Page, result.Size)
	}
}

// ExportRegister handles GET /assets/export. It accepts the ListAssets
// filters and streams an xlsx workbook.
func (h *AssetHandler) ExportRegister(c *gin.Context) {
	query, err := parseListAssetsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entries, err := h.assets.AssetRegister(c.Request.Context(), *query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := fmt.Sprintf("asset-register-%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", export.RegisterContentType)
	c.Status(http.StatusOK)

	if err := export.WriteAssetRegister(c.Writer, entries); err != nil {
		h.logger.Errorw("failed to write asset register", "error", err, "entries", len(entries))
		_ = c.Error(err)
	}
}

func parseListAssetsQuery(c *gin.Context) (*usecases.ListAssetsQuery, error) {
	p := utils.ParsePagination(c)
	query := &usecases.ListAssetsQuery{
		Status:   c.Query("status"),
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	var err error
	if query.ModelNumberID, err = utils.ParseOptionalUintQuery(c, "model_number_id"); err != nil {
		return nil, err
	}
	if query.AssignedToID, err = utils.ParseOptionalUintQuery(c, "assigned_to_id"); err != nil {
		return nil, err
	}
	if query.Verified, err = utils.ParseOptionalBoolQuery(c, "verified"); err != nil {
		return nil, err
	}
	return query, nil
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, errors.NewValidationError("purchase_date must use the YYYY-MM-DD format", "purchase_date")
	}
	return &t, nil
}
