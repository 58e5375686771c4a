package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"art/internal/domain/organization"
	"art/internal/infrastructure/persistence/mappers"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/db"
	apperrors "art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/mapper"
)

// orgBase bundles what every organisation repository needs.
type orgBase struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
	logger logger.Interface
}

func newOrgBase(gdb *gorm.DB, log logger.Interface) orgBase {
	return orgBase{db: gdb, mapper: mappers.NewOrganizationMapper(), logger: log}
}

func (b orgBase) tx(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, b.db)
}

// create inserts model, translating constraint violations.
func (b orgBase) create(ctx context.Context, model any, entity, uniqueField string) error {
	if err := b.tx(ctx).Create(model).Error; err != nil {
		if appErr := translateWriteError(err, entity, uniqueField); appErr != nil {
			return appErr
		}
		b.logger.Errorw("failed to create "+entity, "error", err)
		return fmt.Errorf("failed to create %s: %w", entity, err)
	}
	return nil
}

func (b orgBase) update(ctx context.Context, model any, id uint, values map[string]any, entity, uniqueField string) error {
	result := b.tx(ctx).Model(model).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		if appErr := translateWriteError(result.Error, entity, uniqueField); appErr != nil {
			return appErr
		}
		b.logger.Errorw("failed to update "+entity, "id", id, "error", result.Error)
		return fmt.Errorf("failed to update %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(entity + " not found")
	}
	return nil
}

func (b orgBase) delete(ctx context.Context, model any, id uint, entity string) error {
	result := b.tx(ctx).Delete(model, id)
	if result.Error != nil {
		if appErr := translateWriteError(result.Error, entity, "id"); appErr != nil {
			return appErr
		}
		b.logger.Errorw("failed to delete "+entity, "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(entity + " not found")
	}
	return nil
}

// page counts and fetches one page of rows into dest.
func (b orgBase) page(query *gorm.DB, filter organization.ListFilter, order string, dest any) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	if err := query.Order(order).Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Centres
// ---------------------------------------------------------------------------

type CentreRepositoryImpl struct{ orgBase }

func NewCentreRepository(db *gorm.DB, logger logger.Interface) organization.CentreRepository {
	return &CentreRepositoryImpl{newOrgBase(db, logger)}
}

func (r *CentreRepositoryImpl) Create(ctx context.Context, c *organization.Centre) error {
	model := r.mapper.CentreToModel(c)
	if err := r.create(ctx, model, "centre", "name"); err != nil {
		return err
	}
	return c.SetID(model.ID)
}

func (r *CentreRepositoryImpl) Update(ctx context.Context, c *organization.Centre) error {
	return r.update(ctx, &models.CentreModel{}, c.ID(), map[string]any{
		"name":       c.Name(),
		"country":    c.Country(),
		"updated_at": c.UpdatedAt(),
	}, "centre", "name")
}

func (r *CentreRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.CentreModel{}, id, "centre")
}

func (r *CentreRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Centre, error) {
	var model models.CentreModel
	found, err := notFoundAsNil(r.tx(ctx).First(&model, id).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.CentreToEntity(&model), nil
}

func (r *CentreRepositoryImpl) GetByName(ctx context.Context, name string) (*organization.Centre, error) {
	var model models.CentreModel
	found, err := notFoundAsNil(r.tx(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&model).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.CentreToEntity(&model), nil
}

func (r *CentreRepositoryImpl) List(ctx context.Context, filter organization.ListFilter) ([]*organization.Centre, int64, error) {
	var rows []models.CentreModel
	query := r.tx(ctx).Model(&models.CentreModel{}).Scopes(db.NameContains("name", filter.Search))
	total, err := r.page(query, filter, "name ASC", &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list centres: %w", err)
	}
	return mapper.MapSlice(rows, func(m models.CentreModel) *organization.Centre { return r.mapper.CentreToEntity(&m) }), total, nil
}

// CountDependents counts floors and users attached to the centre.
func (r *CentreRepositoryImpl) CountDependents(ctx context.Context, id uint) (int64, error) {
	var floors, users int64
	if err := r.tx(ctx).Model(&models.OfficeFloorModel{}).Where("centre_id = ?", id).Count(&floors).Error; err != nil {
		return 0, fmt.Errorf("failed to count floors of centre %d: %w", id, err)
	}
	if err := r.tx(ctx).Model(&models.UserModel{}).Where("centre_id = ?", id).Count(&users).Error; err != nil {
		return 0, fmt.Errorf("failed to count users of centre %d: %w", id, err)
	}
	return floors + users, nil
}

// ---------------------------------------------------------------------------
// Floors
// ---------------------------------------------------------------------------

type FloorRepositoryImpl struct{ orgBase }

func NewFloorRepository(db *gorm.DB, logger logger.Interface) organization.FloorRepository {
	return &FloorRepositoryImpl{newOrgBase(db, logger)}
}

func (r *FloorRepositoryImpl) Create(ctx context.Context, f *organization.Floor) error {
	model := r.mapper.FloorToModel(f)
	if err := r.create(ctx, model, "office floor", "number"); err != nil {
		return err
	}
	return f.SetID(model.ID)
}

func (r *FloorRepositoryImpl) Update(ctx context.Context, f *organization.Floor) error {
	return r.update(ctx, &models.OfficeFloorModel{}, f.ID(), map[string]any{
		"number":     f.Number(),
		"updated_at": f.UpdatedAt(),
	}, "office floor", "number")
}

func (r *FloorRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.OfficeFloorModel{}, id, "office floor")
}

func (r *FloorRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Floor, error) {
	var model models.OfficeFloorModel
	found, err := notFoundAsNil(r.tx(ctx).First(&model, id).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.FloorToEntity(&model), nil
}

func (r *FloorRepositoryImpl) GetByNumber(ctx context.Context, centreID uint, number int) (*organization.Floor, error) {
	var model models.OfficeFloorModel
	found, err := notFoundAsNil(r.tx(ctx).Where("centre_id = ? AND number = ?", centreID, number).First(&model).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.FloorToEntity(&model), nil
}

func (r *FloorRepositoryImpl) List(ctx context.Context, filter organization.ListFilter) ([]*organization.Floor, int64, error) {
	var rows []models.OfficeFloorModel
	query := r.tx(ctx).Model(&models.OfficeFloorModel{})
	if filter.ParentID != nil {
		query = query.Where("centre_id = ?", *filter.ParentID)
	}
	total, err := r.page(query, filter, "centre_id ASC, number ASC", &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list office floors: %w", err)
	}
	return mapper.MapSlice(rows, func(m models.OfficeFloorModel) *organization.Floor { return r.mapper.FloorToEntity(&m) }), total, nil
}

func (r *FloorRepositoryImpl) CountWorkspaces(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := r.tx(ctx).Model(&models.WorkspaceModel{}).Where("floor_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count workspaces of floor %d: %w", id, err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Workspaces
// ---------------------------------------------------------------------------

type WorkspaceRepositoryImpl struct{ orgBase }

func NewWorkspaceRepository(db *gorm.DB, logger logger.Interface) organization.WorkspaceRepository {
	return &WorkspaceRepositoryImpl{newOrgBase(db, logger)}
}

func (r *WorkspaceRepositoryImpl) Create(ctx context.Context, w *organization.Workspace) error {
	model := r.mapper.WorkspaceToModel(w)
	if err := r.create(ctx, model, "workspace", "name"); err != nil {
		return err
	}
	return w.SetID(model.ID)
}

func (r *WorkspaceRepositoryImpl) Update(ctx context.Context, w *organization.Workspace) error {
	return r.update(ctx, &models.WorkspaceModel{}, w.ID(), map[string]any{
		"name":       w.Name(),
		"updated_at": w.UpdatedAt(),
	}, "workspace", "name")
}

func (r *WorkspaceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.WorkspaceModel{}, id, "workspace")
}

func (r *WorkspaceRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Workspace, error) {
	var model models.WorkspaceModel
	found, err := notFoundAsNil(r.tx(ctx).First(&model, id).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.WorkspaceToEntity(&model), nil
}

func (r *WorkspaceRepositoryImpl) GetByName(ctx context.Context, floorID uint, name string) (*organization.Workspace, error) {
	var model models.WorkspaceModel
	found, err := notFoundAsNil(r.tx(ctx).
		Where("floor_id = ? AND LOWER(name) = ?", floorID, strings.ToLower(name)).
		First(&model).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.WorkspaceToEntity(&model), nil
}

func (r *WorkspaceRepositoryImpl) List(ctx context.Context, filter organization.ListFilter) ([]*organization.Workspace, int64, error) {
	var rows []models.WorkspaceModel
	query := r.tx(ctx).Model(&models.WorkspaceModel{}).Scopes(db.NameContains("name", filter.Search))
	if filter.ParentID != nil {
		query = query.Where("floor_id = ?", *filter.ParentID)
	}
	total, err := r.page(query, filter, "name ASC", &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return mapper.MapSlice(rows, func(m models.WorkspaceModel) *organization.Workspace { return r.mapper.WorkspaceToEntity(&m) }), total, nil
}

// ---------------------------------------------------------------------------
// Departments
// ---------------------------------------------------------------------------

type DepartmentRepositoryImpl struct{ orgBase }

func NewDepartmentRepository(db *gorm.DB, logger logger.Interface) organization.DepartmentRepository {
	return &DepartmentRepositoryImpl{newOrgBase(db, logger)}
}

func (r *DepartmentRepositoryImpl) Create(ctx context.Context, d *organization.Department) error {
	model := r.mapper.DepartmentToModel(d)
	if err := r.create(ctx, model, "department", "name"); err != nil {
		return err
	}
	return d.SetID(model.ID)
}

func (r *DepartmentRepositoryImpl) Update(ctx context.Context, d *organization.Department) error {
	return r.update(ctx, &models.DepartmentModel{}, d.ID(), map[string]any{
		"name":       d.Name(),
		"updated_at": d.UpdatedAt(),
	}, "department", "name")
}

func (r *DepartmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.DepartmentModel{}, id, "department")
}

func (r *DepartmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Department, error) {
	var model models.DepartmentModel
	found, err := notFoundAsNil(r.tx(ctx).First(&model, id).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.DepartmentToEntity(&model), nil
}

func (r *DepartmentRepositoryImpl) GetByName(ctx context.Context, name string) (*organization.Department, error) {
	var model models.DepartmentModel
	found, err := notFoundAsNil(r.tx(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&model).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.DepartmentToEntity(&model), nil
}

func (r *DepartmentRepositoryImpl) List(ctx context.Context, filter organization.ListFilter) ([]*organization.Department, int64, error) {
	var rows []models.DepartmentModel
	query := r.tx(ctx).Model(&models.DepartmentModel{}).Scopes(db.NameContains("name", filter.Search))
	total, err := r.page(query, filter, "name ASC", &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	return mapper.MapSlice(rows, func(m models.DepartmentModel) *organization.Department { return r.mapper.DepartmentToEntity(&m) }), total, nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type UserRepositoryImpl struct{ orgBase }

func NewUserRepository(db *gorm.DB, logger logger.Interface) organization.UserRepository {
	return &UserRepositoryImpl{newOrgBase(db, logger)}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *organization.User) error {
	model := r.mapper.UserToModel(u)
	if err := r.create(ctx, model, "user", "email"); err != nil {
		return err
	}
	return u.SetID(model.ID)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *organization.User) error {
	return r.update(ctx, &models.UserModel{}, u.ID(), map[string]any{
		"name":          u.Name(),
		"role":          u.Role().String(),
		"centre_id":     u.CentreID(),
		"department_id": u.DepartmentID(),
		"updated_at":    u.UpdatedAt(),
	}, "user", "email")
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.UserModel{}, id, "user")
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.User, error) {
	var model models.UserModel
	found, err := notFoundAsNil(r.tx(ctx).First(&model, id).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.UserToEntity(&model), nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*organization.User, error) {
	var model models.UserModel
	found, err := notFoundAsNil(r.tx(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&model).Error)
	if err != nil || !found {
		return nil, err
	}
	return r.mapper.UserToEntity(&model), nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter organization.ListFilter) ([]*organization.User, int64, error) {
	var rows []models.UserModel
	query := r.tx(ctx).Model(&models.UserModel{})
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}
	if filter.ParentID != nil {
		query = query.Where("department_id = ?", *filter.ParentID)
	}
	total, err := r.page(query, filter, "email ASC", &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return mappers.UsersToEntities(r.mapper, rows), total, nil
}
