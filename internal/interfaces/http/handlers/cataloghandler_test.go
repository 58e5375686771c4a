package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "art/internal/application/catalog/dto"
	catalogusecases "art/internal/application/catalog/usecases"
	"art/internal/domain/catalog"
	"art/internal/interfaces/http/handlers/testutil"
	"art/internal/shared/errors"
)

func TestCatalogHandler_Create_MapsSegmentToLevel(t *testing.T) {
	tests := []struct {
		segment string
		level   catalog.Level
	}{
		{"categories", catalog.LevelCategory},
		{"sub-categories", catalog.LevelSubCategory},
		{"types", catalog.LevelType},
		{"makes", catalog.LevelMake},
		{"model-numbers", catalog.LevelModelNumber},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			var got catalogusecases.CreateCatalogItemCommand
			svc := &mockCatalogService{
				createFunc: func(ctx context.Context, cmd catalogusecases.CreateCatalogItemCommand) (*catalogdto.CatalogItemDTO, error) {
					got = cmd
					return &catalogdto.CatalogItemDTO{ID: 1, Level: string(cmd.Level), Name: "Electronics"}, nil
				},
			}
			handler := NewCatalogHandler(svc, testutil.NewMockLogger())

			parent := uint(2)
			c, w := testutil.NewTestContext(http.MethodPost, "/catalog/"+tt.segment, map[string]any{
				"name":      "electronics",
				"parent_id": parent,
			})
			testutil.SetURLParam(c, "level", tt.segment)
			handler.Create(c)

			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, "electronics", got.Name)
			require.NotNil(t, got.ParentID)
			assert.Equal(t, parent, *got.ParentID)
		})
	}
}

func TestCatalogHandler_UnknownLevel(t *testing.T) {
	handler := NewCatalogHandler(&mockCatalogService{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog/vendors", nil)
	testutil.SetURLParam(c, "level", "vendors")
	handler.List(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_Create_MissingName(t *testing.T) {
	handler := NewCatalogHandler(&mockCatalogService{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/catalog/categories", map[string]any{})
	testutil.SetURLParam(c, "level", "categories")
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_Delete_Protected(t *testing.T) {
	svc := &mockCatalogService{
		deleteFunc: func(ctx context.Context, level catalog.Level, id uint) error {
			assert.Equal(t, catalog.LevelMake, level)
			assert.Equal(t, uint(4), id)
			return errors.NewProtectedDeletionError("make is still referenced by model numbers")
		},
	}
	handler := NewCatalogHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/catalog/makes/4", nil)
	testutil.SetURLParam(c, "level", "makes")
	testutil.SetURLParam(c, "id", "4")
	handler.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "protected_deletion", resp.Error.Type)
}

func TestCatalogHandler_List_PassesFilters(t *testing.T) {
	var got catalogusecases.ListCatalogItemsQuery
	svc := &mockCatalogService{
		listFunc: func(ctx context.Context, query catalogusecases.ListCatalogItemsQuery) (*catalogusecases.ListCatalogItemsResult, error) {
			got = query
			return &catalogusecases.ListCatalogItemsResult{Page: query.Page, Size: query.PageSize}, nil
		},
	}
	handler := NewCatalogHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog/types", nil)
	testutil.SetURLParam(c, "level", "types")
	testutil.SetQueryParams(c, map[string]string{"parent_id": "7", "search": "lap"})
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, catalog.LevelType, got.Level)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, uint(7), *got.ParentID)
	assert.Equal(t, "lap", got.Search)
}
