package handlers

import (
	"context"

	assetdto "art/internal/application/asset/dto"
	assetusecases "art/internal/application/asset/usecases"
	catalogdto "art/internal/application/catalog/dto"
	catalogusecases "art/internal/application/catalog/usecases"
	orgdto "art/internal/application/organization/dto"
	"art/internal/domain/asset"
	"art/internal/domain/assignee"
	"art/internal/domain/catalog"
	"art/internal/domain/organization"
)

// mockAssetService implements assetService. Unset functions panic, which
// flags an unexpected call.
type mockAssetService struct {
	createAssetFunc       func(ctx context.Context, cmd assetusecases.CreateAssetCommand) (*assetdto.AssetDTO, error)
	updateAssetFunc       func(ctx context.Context, cmd assetusecases.UpdateAssetCommand) (*assetdto.AssetDTO, error)
	deleteAssetFunc       func(ctx context.Context, id uint) error
	getAssetFunc          func(ctx context.Context, id uint) (*assetdto.AssetDTO, error)
	getAssetByUUIDFunc    func(ctx context.Context, uuid string) (*assetdto.AssetDTO, error)
	listAssetsFunc        func(ctx context.Context, query assetusecases.ListAssetsQuery) (*assetusecases.ListAssetsResult, error)
	listOwnerAssetsFunc   func(ctx context.Context, ref assignee.Ref, page, pageSize int) (*assetusecases.ListAssetsResult, error)
	recordStatusFunc      func(ctx context.Context, cmd assetusecases.RecordStatusCommand) (*assetdto.StatusRecordDTO, error)
	recordAllocationFunc  func(ctx context.Context, cmd assetusecases.RecordAllocationCommand) (*assetdto.AllocationRecordDTO, error)
	statusHistoryFunc     func(ctx context.Context, assetID uint) ([]*assetdto.StatusRecordDTO, error)
	allocationHistoryFunc func(ctx context.Context, assetID uint) ([]*assetdto.AllocationRecordDTO, error)
	stockSummaryFunc      func(ctx context.Context, modelNumberID uint) ([]assetdto.StatusCount, error)
	addConditionFunc      func(ctx context.Context, assetID uint, notes string) (*assetdto.ConditionDTO, error)
	listConditionsFunc    func(ctx context.Context, assetID uint) ([]*assetdto.ConditionDTO, error)
	reportIncidentFunc    func(ctx context.Context, cmd assetusecases.ReportIncidentCommand) (*assetdto.IncidentReportDTO, error)
	listIncidentsFunc     func(ctx context.Context, assetID uint) ([]*assetdto.IncidentReportDTO, error)
	assetRegisterFunc     func(ctx context.Context, query assetusecases.ListAssetsQuery) ([]*assetdto.RegisterEntryDTO, error)
}

func (m *mockAssetService) CreateAsset(ctx context.Context, cmd assetusecases.CreateAssetCommand) (*assetdto.AssetDTO, error) {
	return m.createAssetFunc(ctx, cmd)
}

func (m *mockAssetService) UpdateAsset(ctx context.Context, cmd assetusecases.UpdateAssetCommand) (*assetdto.AssetDTO, error) {
	return m.updateAssetFunc(ctx, cmd)
}

func (m *mockAssetService) DeleteAsset(ctx context.Context, id uint) error {
	return m.deleteAssetFunc(ctx, id)
}

func (m *mockAssetService) GetAsset(ctx context.Context, id uint) (*assetdto.AssetDTO, error) {
	return m.getAssetFunc(ctx, id)
}

func (m *mockAssetService) GetAssetByUUID(ctx context.Context, uuid string) (*assetdto.AssetDTO, error) {
	return m.getAssetByUUIDFunc(ctx, uuid)
}

func (m *mockAssetService) ListAssets(ctx context.Context, query assetusecases.ListAssetsQuery) (*assetusecases.ListAssetsResult, error) {
	return m.listAssetsFunc(ctx, query)
}

func (m *mockAssetService) ListOwnerAssets(ctx context.Context, ref assignee.Ref, page, pageSize int) (*assetusecases.ListAssetsResult, error) {
	return m.listOwnerAssetsFunc(ctx, ref, page, pageSize)
}

func (m *mockAssetService) RecordStatus(ctx context.Context, cmd assetusecases.RecordStatusCommand) (*assetdto.StatusRecordDTO, error) {
	return m.recordStatusFunc(ctx, cmd)
}

func (m *mockAssetService) RecordAllocation(ctx context.Context, cmd assetusecases.RecordAllocationCommand) (*assetdto.AllocationRecordDTO, error) {
	return m.recordAllocationFunc(ctx, cmd)
}

func (m *mockAssetService) StatusHistory(ctx context.Context, assetID uint) ([]*assetdto.StatusRecordDTO, error) {
	return m.statusHistoryFunc(ctx, assetID)
}

func (m *mockAssetService) AllocationHistory(ctx context.Context, assetID uint) ([]*assetdto.AllocationRecordDTO, error) {
	return m.allocationHistoryFunc(ctx, assetID)
}

func (m *mockAssetService) StockSummary(ctx context.Context, modelNumberID uint) ([]assetdto.StatusCount, error) {
	return m.stockSummaryFunc(ctx, modelNumberID)
}

func (m *mockAssetService) AddCondition(ctx context.Context, assetID uint, notes string) (*assetdto.ConditionDTO, error) {
	return m.addConditionFunc(ctx, assetID, notes)
}

func (m *mockAssetService) ListConditions(ctx context.Context, assetID uint) ([]*assetdto.ConditionDTO, error) {
	return m.listConditionsFunc(ctx, assetID)
}

func (m *mockAssetService) ReportIncident(ctx context.Context, cmd assetusecases.ReportIncidentCommand) (*assetdto.IncidentReportDTO, error) {
	return m.reportIncidentFunc(ctx, cmd)
}

func (m *mockAssetService) ListIncidents(ctx context.Context, assetID uint) ([]*assetdto.IncidentReportDTO, error) {
	return m.listIncidentsFunc(ctx, assetID)
}

func (m *mockAssetService) AssetRegister(ctx context.Context, query assetusecases.ListAssetsQuery) ([]*assetdto.RegisterEntryDTO, error) {
	return m.assetRegisterFunc(ctx, query)
}

type mockSpecsService struct {
	createSpecsFunc func(ctx context.Context, tuple asset.SpecsTuple) (*assetdto.SpecsDTO, error)
	getSpecsFunc    func(ctx context.Context, id uint) (*assetdto.SpecsDTO, error)
	listSpecsFunc   func(ctx context.Context, page, pageSize int) (*assetusecases.ListSpecsResult, error)
	deleteSpecsFunc func(ctx context.Context, id uint) error
}

func (m *mockSpecsService) CreateSpecs(ctx context.Context, tuple asset.SpecsTuple) (*assetdto.SpecsDTO, error) {
	return m.createSpecsFunc(ctx, tuple)
}

func (m *mockSpecsService) GetSpecs(ctx context.Context, id uint) (*assetdto.SpecsDTO, error) {
	return m.getSpecsFunc(ctx, id)
}

func (m *mockSpecsService) ListSpecs(ctx context.Context, page, pageSize int) (*assetusecases.ListSpecsResult, error) {
	return m.listSpecsFunc(ctx, page, pageSize)
}

func (m *mockSpecsService) DeleteSpecs(ctx context.Context, id uint) error {
	return m.deleteSpecsFunc(ctx, id)
}

type mockCatalogService struct {
	createFunc func(ctx context.Context, cmd catalogusecases.CreateCatalogItemCommand) (*catalogdto.CatalogItemDTO, error)
	updateFunc func(ctx context.Context, cmd catalogusecases.UpdateCatalogItemCommand) (*catalogdto.CatalogItemDTO, error)
	deleteFunc func(ctx context.Context, level catalog.Level, id uint) error
	getFunc    func(ctx context.Context, level catalog.Level, id uint) (*catalogdto.CatalogItemDTO, error)
	listFunc   func(ctx context.Context, query catalogusecases.ListCatalogItemsQuery) (*catalogusecases.ListCatalogItemsResult, error)
}

func (m *mockCatalogService) Create(ctx context.Context, cmd catalogusecases.CreateCatalogItemCommand) (*catalogdto.CatalogItemDTO, error) {
	return m.createFunc(ctx, cmd)
}

func (m *mockCatalogService) Update(ctx context.Context, cmd catalogusecases.UpdateCatalogItemCommand) (*catalogdto.CatalogItemDTO, error) {
	return m.updateFunc(ctx, cmd)
}

func (m *mockCatalogService) Delete(ctx context.Context, level catalog.Level, id uint) error {
	return m.deleteFunc(ctx, level, id)
}

func (m *mockCatalogService) Get(ctx context.Context, level catalog.Level, id uint) (*catalogdto.CatalogItemDTO, error) {
	return m.getFunc(ctx, level, id)
}

func (m *mockCatalogService) List(ctx context.Context, query catalogusecases.ListCatalogItemsQuery) (*catalogusecases.ListCatalogItemsResult, error) {
	return m.listFunc(ctx, query)
}

type mockFloorUseCase struct {
	createFunc func(ctx context.Context, req orgdto.FloorRequest) (*orgdto.FloorDTO, error)
	updateFunc func(ctx context.Context, id uint, number int) (*orgdto.FloorDTO, error)
	deleteFunc func(ctx context.Context, id uint) error
	getFunc    func(ctx context.Context, id uint) (*orgdto.FloorDTO, error)
	listFunc   func(ctx context.Context, filter organization.ListFilter) (*orgdto.ListResult[*orgdto.FloorDTO], error)
}

func (m *mockFloorUseCase) Create(ctx context.Context, req orgdto.FloorRequest) (*orgdto.FloorDTO, error) {
	return m.createFunc(ctx, req)
}

func (m *mockFloorUseCase) Update(ctx context.Context, id uint, number int) (*orgdto.FloorDTO, error) {
	return m.updateFunc(ctx, id, number)
}

func (m *mockFloorUseCase) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockFloorUseCase) Get(ctx context.Context, id uint) (*orgdto.FloorDTO, error) {
	return m.getFunc(ctx, id)
}

func (m *mockFloorUseCase) List(ctx context.Context, filter organization.ListFilter) (*orgdto.ListResult[*orgdto.FloorDTO], error) {
	return m.listFunc(ctx, filter)
}

type mockUserUseCase struct {
	createFunc func(ctx context.Context, req orgdto.CreateUserRequest) (*orgdto.UserDTO, error)
	updateFunc func(ctx context.Context, id uint, req orgdto.UpdateUserRequest) (*orgdto.UserDTO, error)
	deleteFunc func(ctx context.Context, id uint) error
	getFunc    func(ctx context.Context, id uint) (*orgdto.UserDTO, error)
	listFunc   func(ctx context.Context, filter organization.ListFilter) (*orgdto.ListResult[*orgdto.UserDTO], error)
}

func (m *mockUserUseCase) Create(ctx context.Context, req orgdto.CreateUserRequest) (*orgdto.UserDTO, error) {
	return m.createFunc(ctx, req)
}

func (m *mockUserUseCase) Update(ctx context.Context, id uint, req orgdto.UpdateUserRequest) (*orgdto.UserDTO, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *mockUserUseCase) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockUserUseCase) Get(ctx context.Context, id uint) (*orgdto.UserDTO, error) {
	return m.getFunc(ctx, id)
}

func (m *mockUserUseCase) List(ctx context.Context, filter organization.ListFilter) (*orgdto.ListResult[*orgdto.UserDTO], error) {
	return m.listFunc(ctx, filter)
}

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}
