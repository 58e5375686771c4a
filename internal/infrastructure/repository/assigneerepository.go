package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"art/internal/domain/assignee"
	"art/internal/infrastructure/persistence/mappers"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/db"
	apperrors "art/internal/shared/errors"
	"art/internal/shared/logger"
)

type AssigneeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssigneeMapper
	logger logger.Interface
}

func NewAssigneeRepository(db *gorm.DB, logger logger.Interface) assignee.Repository {
	return &AssigneeRepositoryImpl{
		db:     db,
		mapper: mappers.NewAssigneeMapper(),
		logger: logger,
	}
}

func (r *AssigneeRepositoryImpl) Create(ctx context.Context, a *assignee.Assignee) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("assignee already exists for " + a.Ref().String())
		}
		r.logger.Errorw("failed to create asset assignee", "ref", a.Ref().String(), "error", err)
		return fmt.Errorf("failed to create asset assignee: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AssigneeRepositoryImpl) GetByID(ctx context.Context, id uint) (*assignee.Assignee, error) {
	var model models.AssetAssigneeModel
	found, err := notFoundAsNil(db.GetTxFromContext(ctx, r.db).First(&model, id).Error)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset assignee: %w", err)
	}
	if !found {
		return nil, nil
	}
	return r.mapper.ToEntity(&model)
}

func (r *AssigneeRepositoryImpl) GetByRef(ctx context.Context, ref assignee.Ref) (*assignee.Assignee, error) {
	column, err := refColumn(ref)
	if err != nil {
		return nil, err
	}

	var model models.AssetAssigneeModel
	found, err := notFoundAsNil(db.GetTxFromContext(ctx, r.db).Where(column+" = ?", ref.ID()).First(&model).Error)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset assignee: %w", err)
	}
	if !found {
		return nil, nil
	}
	return r.mapper.ToEntity(&model)
}

func (r *AssigneeRepositoryImpl) DeleteByRef(ctx context.Context, ref assignee.Ref) error {
	column, err := refColumn(ref)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Where(column+" = ?", ref.ID()).
		Delete(&models.AssetAssigneeModel{}).Error; err != nil {
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewProtectedDeletionError("assignee is still referenced by allocation history")
		}
		return fmt.Errorf("failed to delete asset assignee: %w", err)
	}
	return nil
}

func refColumn(ref assignee.Ref) (string, error) {
	switch ref.Kind() {
	case assignee.KindUser:
		return "user_id", nil
	case assignee.KindDepartment:
		return "department_id", nil
	case assignee.KindWorkspace:
		return "workspace_id", nil
	}
	return "", assignee.ErrInvalidAssignee
}
