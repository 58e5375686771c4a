package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"art/internal/application/organization/dto"
	"art/internal/domain/organization"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

type updateFloorRequest struct {
	Number *int `json:"number" binding:"required,min=0"`
}

type updateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

// OrganizationHandler serves centres, floors, workspaces, departments and
// users.
type OrganizationHandler struct {
	centres     centreUseCase
	floors      floorUseCase
	workspaces  workspaceUseCase
	departments departmentUseCase
	users       userUseCase
	logger      logger.Interface
}

func NewOrganizationHandler(
	centres centreUseCase,
	floors floorUseCase,
	workspaces workspaceUseCase,
	departments departmentUseCase,
	users userUseCase,
	log logger.Interface,
) *OrganizationHandler {
	return &OrganizationHandler{
		centres:     centres,
		floors:      floors,
		workspaces:  workspaces,
		departments: departments,
		users:       users,
		logger:      log,
	}
}

// parseListFilter reads search and pagination plus the optional parent id
// query parameter.
func parseListFilter(c *gin.Context, parentKey string) (organization.ListFilter, error) {
	p := utils.ParsePagination(c)
	filter := organization.ListFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if parentKey != "" {
		parentID, err := utils.ParseOptionalUintQuery(c, parentKey)
		if err != nil {
			return filter, err
		}
		filter.ParentID = parentID
	}
	return filter, nil
}

// Centres

func (h *OrganizationHandler) CreateCentre(c *gin.Context) {
	var req dto.CentreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.centres.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Centre created successfully")
}

func (h *OrganizationHandler) GetCentre(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "centre")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.centres.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) ListCentres(c *gin.Context) {
	filter, err := parseListFilter(c, "")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.centres.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrganizationHandler) UpdateCentre(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "centre")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req dto.CentreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.centres.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Centre updated successfully", result)
}

func (h *OrganizationHandler) DeleteCentre(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "centre")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.centres.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Floors

func (h *OrganizationHandler) CreateFloor(c *gin.Context) {
	var req dto.FloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.floors.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Office floor created successfully")
}

func (h *OrganizationHandler) GetFloor(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "office floor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.floors.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) ListFloors(c *gin.Context) {
	filter, err := parseListFilter(c, "centre_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.floors.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrganizationHandler) UpdateFloor(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "office floor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req updateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.floors.Update(c.Request.Context(), id, *req.Number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Office floor updated successfully", result)
}

func (h *OrganizationHandler) DeleteFloor(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "office floor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.floors.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Workspaces

func (h *OrganizationHandler) CreateWorkspace(c *gin.Context) {
	var req dto.WorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.workspaces.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Workspace created successfully")
}

func (h *OrganizationHandler) GetWorkspace(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "workspace")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.workspaces.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) ListWorkspaces(c *gin.Context) {
	filter, err := parseListFilter(c, "floor_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.workspaces.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrganizationHandler) UpdateWorkspace(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "workspace")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req updateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.workspaces.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workspace updated successfully", result)
}

func (h *OrganizationHandler) DeleteWorkspace(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "workspace")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.workspaces.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Departments

func (h *OrganizationHandler) CreateDepartment(c *gin.Context) {
	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.departments.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Department created successfully")
}

func (h *OrganizationHandler) GetDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.departments.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) ListDepartments(c *gin.Context) {
	filter, err := parseListFilter(c, "")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.departments.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrganizationHandler) UpdateDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.departments.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Department updated successfully", result)
}

func (h *OrganizationHandler) DeleteDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.departments.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Users

func (h *OrganizationHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "User created successfully")
}

func (h *OrganizationHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) ListUsers(c *gin.Context) {
	filter, err := parseListFilter(c, "department_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrganizationHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}
	result, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

func (h *OrganizationHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
