package mappers

import (
	"fmt"

	"art/internal/domain/assignee"
	"art/internal/infrastructure/persistence/models"
)

type AssigneeMapper interface {
	ToModel(a *assignee.Assignee) *models.AssetAssigneeModel
	// ToEntity fails with assignee.ErrInvalidAssignee when the row does not
	// reference exactly one owner.
	ToEntity(model *models.AssetAssigneeModel) (*assignee.Assignee, error)
}

type AssigneeMapperImpl struct{}

func NewAssigneeMapper() AssigneeMapper {
	return &AssigneeMapperImpl{}
}

func (m *AssigneeMapperImpl) ToModel(a *assignee.Assignee) *models.AssetAssigneeModel {
	userID, departmentID, workspaceID := a.Ref().Columns()
	return &models.AssetAssigneeModel{
		ID:           a.ID(),
		UserID:       userID,
		DepartmentID: departmentID,
		WorkspaceID:  workspaceID,
		CreatedAt:    a.CreatedAt(),
	}
}

func (m *AssigneeMapperImpl) ToEntity(model *models.AssetAssigneeModel) (*assignee.Assignee, error) {
	ref, err := assignee.RefFromColumns(model.UserID, model.DepartmentID, model.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("asset assignee %d: %w", model.ID, err)
	}
	return assignee.ReconstructAssignee(model.ID, ref, model.CreatedAt)
}
