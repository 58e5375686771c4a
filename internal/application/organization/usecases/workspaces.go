package usecases

import (
	"context"

	"art/internal/application/organization/dto"
	"art/internal/domain/assignee"
	"art/internal/domain/organization"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type WorkspaceUseCase struct {
	workspaces organization.WorkspaceRepository
	floors     organization.FloorRepository
	assignees  AssigneeManager
	assets     AssetCounter
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewWorkspaceUseCase(
	workspaces organization.WorkspaceRepository,
	floors organization.FloorRepository,
	assignees AssigneeManager,
	assets AssetCounter,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *WorkspaceUseCase {
	return &WorkspaceUseCase{
		workspaces: workspaces,
		floors:     floors,
		assignees:  assignees,
		assets:     assets,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Create stores the workspace and its assignee row in one transaction.
func (uc *WorkspaceUseCase) Create(ctx context.Context, req dto.WorkspaceRequest) (*dto.WorkspaceDTO, error) {
	ws, err := organization.NewWorkspace(req.Name, req.FloorID)
	if err != nil {
		return nil, validationError(err, "name")
	}

	var assigneeID uint
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		floor, err := uc.floors.GetByID(txCtx, req.FloorID)
		if err != nil {
			return err
		}
		if floor == nil {
			return errors.NewValidationError("office floor does not exist", "floor_id")
		}
		if err := uc.checkName(txCtx, ws.FloorID(), ws.Name(), 0); err != nil {
			return err
		}
		if err := uc.workspaces.Create(txCtx, ws); err != nil {
			return err
		}
		a, err := uc.assignees.Ensure(txCtx, assignee.WorkspaceRef(ws.ID()))
		if err != nil {
			return err
		}
		assigneeID = a.ID()
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create workspace", "name", req.Name, "floor_id", req.FloorID, "error", err)
		return nil, err
	}

	uc.logger.Infow("workspace created", "workspace_id", ws.ID(), "assignee_id", assigneeID)
	out := dto.ToWorkspaceDTO(ws)
	out.AssigneeID = &assigneeID
	return out, nil
}

// Update renames the workspace and ensures its assignee row.
func (uc *WorkspaceUseCase) Update(ctx context.Context, id uint, name string) (*dto.WorkspaceDTO, error) {
	var (
		ws         *organization.Workspace
		assigneeID uint
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		ws, err = uc.get(txCtx, id)
		if err != nil {
			return err
		}
		if err := ws.Rename(name); err != nil {
			return validationError(err, "name")
		}
		if err := uc.checkName(txCtx, ws.FloorID(), ws.Name(), ws.ID()); err != nil {
			return err
		}
		if err := uc.workspaces.Update(txCtx, ws); err != nil {
			return err
		}
		a, err := uc.assignees.Ensure(txCtx, assignee.WorkspaceRef(ws.ID()))
		if err != nil {
			return err
		}
		assigneeID = a.ID()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update workspace", "workspace_id", id, "error", err)
		return nil, err
	}

	out := dto.ToWorkspaceDTO(ws)
	out.AssigneeID = &assigneeID
	return out, nil
}

// Delete is refused while assets are allocated to the workspace.
func (uc *WorkspaceUseCase) Delete(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.get(txCtx, id); err != nil {
			return err
		}
		if err := releaseAssignee(txCtx, uc.assignees, uc.assets, assignee.WorkspaceRef(id), "workspace"); err != nil {
			return err
		}
		return uc.workspaces.Delete(txCtx, id)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete workspace", "workspace_id", id, "error", err)
		return err
	}
	uc.logger.Infow("workspace deleted", "workspace_id", id)
	return nil
}

func (uc *WorkspaceUseCase) Get(ctx context.Context, id uint) (*dto.WorkspaceDTO, error) {
	ws, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToWorkspaceDTO(ws)
	if out.AssigneeID, err = assigneeIDOf(ctx, uc.assignees, assignee.WorkspaceRef(ws.ID())); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *WorkspaceUseCase) List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.WorkspaceDTO], error) {
	p := normalizePage(filter.Page, filter.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	items, total, err := uc.workspaces.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[*dto.WorkspaceDTO]{Items: dto.ToWorkspaceDTOs(items), Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}

func (uc *WorkspaceUseCase) get(ctx context.Context, id uint) (*organization.Workspace, error) {
	ws, err := uc.workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, errors.NewNotFoundError("workspace not found")
	}
	return ws, nil
}

func (uc *WorkspaceUseCase) checkName(ctx context.Context, floorID uint, name string, selfID uint) error {
	existing, err := uc.workspaces.GetByName(ctx, floorID, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID() != selfID {
		return errors.NewConflictError("workspace with this name already exists on this floor", "name")
	}
	return nil
}
