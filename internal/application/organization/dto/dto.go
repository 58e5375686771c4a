package dto

import (
	"time"

	"art/internal/domain/organization"
	"art/internal/shared/mapper"
)

// ListResult is one page of an organisation listing.
type ListResult[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

type CentreDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FloorDTO struct {
	ID        uint      `json:"id"`
	Number    int       `json:"number"`
	CentreID  uint      `json:"centre_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssigneeID on the workspace, department and user DTOs is the
// asset_assignees id assets are allocated to. Only single-entity responses
// fill it.
type WorkspaceDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	FloorID    uint      `json:"floor_id"`
	AssigneeID *uint     `json:"assignee_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DepartmentDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	AssigneeID *uint     `json:"assignee_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserDTO struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CentreID     *uint     `json:"centre_id"`
	DepartmentID *uint     `json:"department_id"`
	AssigneeID   *uint     `json:"assignee_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CentreRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type FloorRequest struct {
	Number   int  `json:"number" binding:"min=0"`
	CentreID uint `json:"centre_id" binding:"required"`
}

type WorkspaceRequest struct {
	Name    string `json:"name" binding:"required"`
	FloorID uint   `json:"floor_id" binding:"required"`
}

type DepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateUserRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name"`
	Role         string `json:"role" binding:"omitempty,oneof=admin user"`
	CentreID     *uint  `json:"centre_id"`
	DepartmentID *uint  `json:"department_id"`
}

type UpdateUserRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role" binding:"omitempty,oneof=admin user"`
	CentreID     *uint  `json:"centre_id"`
	DepartmentID *uint  `json:"department_id"`
}

func ToCentreDTO(c *organization.Centre) *CentreDTO {
	if c == nil {
		return nil
	}
	return &CentreDTO{ID: c.ID(), Name: c.Name(), Country: c.Country(), CreatedAt: c.CreatedAt(), UpdatedAt: c.UpdatedAt()}
}

func ToFloorDTO(f *organization.Floor) *FloorDTO {
	if f == nil {
		return nil
	}
	return &FloorDTO{ID: f.ID(), Number: f.Number(), CentreID: f.CentreID(), CreatedAt: f.CreatedAt(), UpdatedAt: f.UpdatedAt()}
}

func ToWorkspaceDTO(w *organization.Workspace) *WorkspaceDTO {
	if w == nil {
		return nil
	}
	return &WorkspaceDTO{ID: w.ID(), Name: w.Name(), FloorID: w.FloorID(), CreatedAt: w.CreatedAt(), UpdatedAt: w.UpdatedAt()}
}

func ToDepartmentDTO(d *organization.Department) *DepartmentDTO {
	if d == nil {
		return nil
	}
	return &DepartmentDTO{ID: d.ID(), Name: d.Name(), CreatedAt: d.CreatedAt(), UpdatedAt: d.UpdatedAt()}
}

func ToUserDTO(u *organization.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		CentreID:     u.CentreID(),
		DepartmentID: u.DepartmentID(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func ToCentreDTOs(items []*organization.Centre) []*CentreDTO {
	return mapper.MapSlice(items, ToCentreDTO)
}

func ToFloorDTOs(items []*organization.Floor) []*FloorDTO {
	return mapper.MapSlice(items, ToFloorDTO)
}

func ToWorkspaceDTOs(items []*organization.Workspace) []*WorkspaceDTO {
	return mapper.MapSlice(items, ToWorkspaceDTO)
}

func ToDepartmentDTOs(items []*organization.Department) []*DepartmentDTO {
	return mapper.MapSlice(items, ToDepartmentDTO)
}

func ToUserDTOs(items []*organization.User) []*UserDTO {
	return mapper.MapSlice(items, ToUserDTO)
}
