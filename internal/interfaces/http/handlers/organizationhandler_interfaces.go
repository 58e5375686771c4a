package handlers

import (
	"context"

	"art/internal/application/organization/dto"
	"art/internal/domain/organization"
)

// Use case interfaces for OrganizationHandler. The organisation service's
// use case fields satisfy them.

type centreUseCase interface {
	Create(ctx context.Context, req dto.CentreRequest) (*dto.CentreDTO, error)
	Update(ctx context.Context, id uint, req dto.CentreRequest) (*dto.CentreDTO, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*dto.CentreDTO, error)
	List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.CentreDTO], error)
}

type floorUseCase interface {
	Create(ctx context.Context, req dto.FloorRequest) (*dto.FloorDTO, error)
	Update(ctx context.Context, id uint, number int) (*dto.FloorDTO, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*dto.FloorDTO, error)
	List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.FloorDTO], error)
}

type workspaceUseCase interface {
	Create(ctx context.Context, req dto.WorkspaceRequest) (*dto.WorkspaceDTO, error)
	Update(ctx context.Context, id uint, name string) (*dto.WorkspaceDTO, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*dto.WorkspaceDTO, error)
	List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.WorkspaceDTO], error)
}

type departmentUseCase interface {
	Create(ctx context.Context, req dto.DepartmentRequest) (*dto.DepartmentDTO, error)
	Update(ctx context.Context, id uint, req dto.DepartmentRequest) (*dto.DepartmentDTO, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*dto.DepartmentDTO, error)
	List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.DepartmentDTO], error)
}

type userUseCase interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserDTO, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*dto.UserDTO, error)
	List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.UserDTO], error)
}
