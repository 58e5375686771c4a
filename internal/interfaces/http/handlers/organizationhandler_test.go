package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orgdto "art/internal/application/organization/dto"
	"art/internal/domain/organization"
	"art/internal/interfaces/http/handlers/testutil"
	"art/internal/shared/errors"
)

func newTestOrganizationHandler(floors *mockFloorUseCase, users *mockUserUseCase) *OrganizationHandler {
	return NewOrganizationHandler(nil, floors, nil, nil, users, testutil.NewMockLogger())
}

func TestOrganizationHandler_UpdateFloor(t *testing.T) {
	floors := &mockFloorUseCase{
		updateFunc: func(ctx context.Context, id uint, number int) (*orgdto.FloorDTO, error) {
			return &orgdto.FloorDTO{ID: id, Number: number, CentreID: 1}, nil
		},
	}
	handler := newTestOrganizationHandler(floors, nil)

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{name: "ground floor", body: map[string]any{"number": 0}, wantCode: http.StatusOK},
		{name: "missing number", body: map[string]any{}, wantCode: http.StatusBadRequest},
		{name: "negative number", body: map[string]any{"number": -1}, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodPut, "/floors/3", tt.body)
			testutil.SetURLParam(c, "id", "3")
			handler.UpdateFloor(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestOrganizationHandler_ListFloors_ByCentre(t *testing.T) {
	var got organization.ListFilter
	floors := &mockFloorUseCase{
		listFunc: func(ctx context.Context, filter organization.ListFilter) (*orgdto.ListResult[*orgdto.FloorDTO], error) {
			got = filter
			return &orgdto.ListResult[*orgdto.FloorDTO]{Page: filter.Page, PageSize: filter.PageSize}, nil
		},
	}
	handler := newTestOrganizationHandler(floors, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/floors", nil)
	testutil.SetQueryParams(c, map[string]string{"centre_id": "2"})
	handler.ListFloors(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, uint(2), *got.ParentID)

	c, w = testutil.NewTestContext(http.MethodGet, "/floors", nil)
	testutil.SetQueryParams(c, map[string]string{"centre_id": "x"})
	handler.ListFloors(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrganizationHandler_DeleteFloor_Protected(t *testing.T) {
	floors := &mockFloorUseCase{
		deleteFunc: func(ctx context.Context, id uint) error {
			return errors.NewProtectedDeletionError("office floor still has workspaces")
		},
	}
	handler := newTestOrganizationHandler(floors, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/floors/3", nil)
	testutil.SetURLParam(c, "id", "3")
	handler.DeleteFloor(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrganizationHandler_CreateUser(t *testing.T) {
	users := &mockUserUseCase{
		createFunc: func(ctx context.Context, req orgdto.CreateUserRequest) (*orgdto.UserDTO, error) {
			if req.Email == "taken@example.com" {
				return nil, errors.NewConflictError("user with this email already exists", "email")
			}
			return &orgdto.UserDTO{ID: 1, Email: req.Email, Role: "user"}, nil
		},
	}
	handler := newTestOrganizationHandler(nil, users)

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{name: "created", body: map[string]any{"email": "jane@example.com"}, wantCode: http.StatusCreated},
		{name: "bad email", body: map[string]any{"email": "jane"}, wantCode: http.StatusBadRequest},
		{name: "bad role", body: map[string]any{"email": "jane@example.com", "role": "owner"}, wantCode: http.StatusBadRequest},
		{name: "duplicate", body: map[string]any{"email": "taken@example.com"}, wantCode: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodPost, "/users", tt.body)
			handler.CreateUser(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestOrganizationHandler_GetUser_NotFound(t *testing.T) {
	users := &mockUserUseCase{
		getFunc: func(ctx context.Context, id uint) (*orgdto.UserDTO, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	handler := newTestOrganizationHandler(nil, users)

	c, w := testutil.NewTestContext(http.MethodGet, "/users/9", nil)
	testutil.SetURLParam(c, "id", "9")
	handler.GetUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
