// Package assignee resolves and maintains the asset_assignees rows that give
// users, departments and workspaces a common owner identity.
package assignee

import (
	"context"
	stderrors "errors"
	"fmt"

	"art/internal/domain/assignee"
	"art/internal/domain/organization"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

// Resolved is an assignee together with the entity it points at.
type Resolved struct {
	ID    uint          `json:"id"`
	Kind  assignee.Kind `json:"kind"`
	RefID uint          `json:"ref_id"`
	Name  string        `json:"name"`
	// Email is set for user assignees only.
	Email string `json:"email,omitempty"`
}

type Service struct {
	assignees   assignee.Repository
	users       organization.UserRepository
	departments organization.DepartmentRepository
	workspaces  organization.WorkspaceRepository
	logger      logger.Interface
}

func NewService(
	assignees assignee.Repository,
	users organization.UserRepository,
	departments organization.DepartmentRepository,
	workspaces organization.WorkspaceRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		assignees:   assignees,
		users:       users,
		departments: departments,
		workspaces:  workspaces,
		logger:      logger,
	}
}

// Ensure returns the assignee for ref, creating it when missing. Callers run
// it inside the transaction that created the referenced entity.
func (s *Service) Ensure(ctx context.Context, ref assignee.Ref) (*assignee.Assignee, error) {
	existing, err := s.assignees.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	a, err := assignee.NewAssignee(ref)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "assignee")
	}
	if err := s.assignees.Create(ctx, a); err != nil {
		s.logger.Errorw("failed to create asset assignee", "ref", ref.String(), "error", err)
		return nil, err
	}
	s.logger.Debugw("asset assignee created", "ref", ref.String(), "assignee_id", a.ID())
	return a, nil
}

// Lookup returns the assignee for ref or a not found error.
func (s *Service) Lookup(ctx context.Context, ref assignee.Ref) (*assignee.Assignee, error) {
	a, err := s.assignees.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no assignee for %s", ref.String()))
	}
	return a, nil
}

// Remove deletes the assignee row of ref, if any.
func (s *Service) Remove(ctx context.Context, ref assignee.Ref) error {
	return s.assignees.DeleteByRef(ctx, ref)
}

// Resolve maps an assignee id onto its display name: the user's e-mail, the
// department name or the workspace name.
func (s *Service) Resolve(ctx context.Context, assigneeID uint) (*Resolved, error) {
	a, err := s.assignees.GetByID(ctx, assigneeID)
	if err != nil {
		if stderrors.Is(err, assignee.ErrInvalidAssignee) {
			return nil, errors.NewValidationError("InvalidAssignee", "assignee")
		}
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("assignee not found")
	}

	ref := a.Ref()
	out := &Resolved{ID: a.ID(), Kind: ref.Kind(), RefID: ref.ID()}

	switch ref.Kind() {
	case assignee.KindUser:
		u, err := s.users.GetByID(ctx, ref.ID())
		if err != nil {
			return nil, err
		}
		if u != nil {
			out.Name = u.Email()
			out.Email = u.Email()
			return out, nil
		}
	case assignee.KindDepartment:
		d, err := s.departments.GetByID(ctx, ref.ID())
		if err != nil {
			return nil, err
		}
		if d != nil {
			out.Name = d.Name()
			return out, nil
		}
	case assignee.KindWorkspace:
		w, err := s.workspaces.GetByID(ctx, ref.ID())
		if err != nil {
			return nil, err
		}
		if w != nil {
			out.Name = w.Name()
			return out, nil
		}
	}

	s.logger.Warnw("assignee references a missing entity", "assignee_id", assigneeID, "ref", ref.String())
	return nil, errors.NewValidationError("InvalidAssignee", "assignee")
}
