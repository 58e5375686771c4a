package mappers

import (
	"art/internal/domain/organization"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/mapper"
)

// OrganizationMapper converts the organisation entities. None of the
// conversions can fail, so there is no error return.
type OrganizationMapper interface {
	CentreToModel(c *organization.Centre) *models.CentreModel
	CentreToEntity(m *models.CentreModel) *organization.Centre
	FloorToModel(f *organization.Floor) *models.OfficeFloorModel
	FloorToEntity(m *models.OfficeFloorModel) *organization.Floor
	WorkspaceToModel(w *organization.Workspace) *models.WorkspaceModel
	WorkspaceToEntity(m *models.WorkspaceModel) *organization.Workspace
	DepartmentToModel(d *organization.Department) *models.DepartmentModel
	DepartmentToEntity(m *models.DepartmentModel) *organization.Department
	UserToModel(u *organization.User) *models.UserModel
	UserToEntity(m *models.UserModel) *organization.User
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) CentreToModel(c *organization.Centre) *models.CentreModel {
	return &models.CentreModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Country:   c.Country(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func (m *OrganizationMapperImpl) CentreToEntity(model *models.CentreModel) *organization.Centre {
	return organization.ReconstructCentre(model.ID, model.Name, model.Country, model.CreatedAt, model.UpdatedAt)
}

func (m *OrganizationMapperImpl) FloorToModel(f *organization.Floor) *models.OfficeFloorModel {
	return &models.OfficeFloorModel{
		ID:        f.ID(),
		Number:    f.Number(),
		CentreID:  f.CentreID(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

func (m *OrganizationMapperImpl) FloorToEntity(model *models.OfficeFloorModel) *organization.Floor {
	return organization.ReconstructFloor(model.ID, model.Number, model.CentreID, model.CreatedAt, model.UpdatedAt)
}

func (m *OrganizationMapperImpl) WorkspaceToModel(w *organization.Workspace) *models.WorkspaceModel {
	return &models.WorkspaceModel{
		ID:        w.ID(),
		Name:      w.Name(),
		FloorID:   w.FloorID(),
		CreatedAt: w.CreatedAt(),
		UpdatedAt: w.UpdatedAt(),
	}
}

func (m *OrganizationMapperImpl) WorkspaceToEntity(model *models.WorkspaceModel) *organization.Workspace {
	return organization.ReconstructWorkspace(model.ID, model.Name, model.FloorID, model.CreatedAt, model.UpdatedAt)
}

func (m *OrganizationMapperImpl) DepartmentToModel(d *organization.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:        d.ID(),
		Name:      d.Name(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func (m *OrganizationMapperImpl) DepartmentToEntity(model *models.DepartmentModel) *organization.Department {
	return organization.ReconstructDepartment(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}

func (m *OrganizationMapperImpl) UserToModel(u *organization.User) *models.UserModel {
	return &models.UserModel{
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

func (m *OrganizationMapperImpl) UserToEntity(model *models.UserModel) *organization.User {
	return organization.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		organization.Role(model.Role),
		model.CentreID,
		model.DepartmentID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// UsersToEntities converts a page of user rows.
func UsersToEntities(m OrganizationMapper, rows []models.UserModel) []*organization.User {
	return mapper.MapSlice(rows, func(row models.UserModel) *organization.User {
		return m.UserToEntity(&row)
	})
}
