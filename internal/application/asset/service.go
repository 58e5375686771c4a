package asset

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/application/asset/usecases"
	"art/internal/domain/asset"
	"art/internal/domain/assignee"
	"art/internal/domain/catalog"
	"art/internal/domain/shared/events"
	"art/internal/shared/db"
	"art/internal/shared/logger"
)

// Repositories groups the persistence ports of the asset service.
type Repositories struct {
	Assets      asset.Repository
	Statuses    asset.StatusLedger
	Allocations asset.AllocationLedger
	Conditions  asset.ConditionRepository
	Incidents   asset.IncidentRepository
	Specs       asset.SpecsRepository
	Catalog     catalog.Repository
}

type ServiceDDD struct {
	createAsset      *usecases.CreateAssetUseCase
	updateAsset      *usecases.UpdateAssetUseCase
	deleteAsset      *usecases.DeleteAssetUseCase
	getAsset         *usecases.GetAssetUseCase
	listAssets       *usecases.ListAssetsUseCase
	recordStatus     *usecases.RecordStatusUseCase
	recordAllocation *usecases.RecordAllocationUseCase
	history          *usecases.AssetHistoryUseCase
	conditions       *usecases.ConditionUseCase
	incidents        *usecases.IncidentUseCase
	specs            *usecases.SpecsUseCase
	register         *usecases.AssetRegisterUseCase
}

func NewServiceDDD(
	repos Repositories,
	assignees usecases.AssigneeResolver,
	publisher events.EventPublisher,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		createAsset: usecases.NewCreateAssetUseCase(
			repos.Assets, repos.Statuses, repos.Allocations, repos.Catalog, repos.Specs, txMgr, logger,
		),
		updateAsset: usecases.NewUpdateAssetUseCase(repos.Assets, repos.Specs, txMgr, logger),
		deleteAsset: usecases.NewDeleteAssetUseCase(repos.Assets, txMgr, logger),
		getAsset:    usecases.NewGetAssetUseCase(repos.Assets, assignees, logger),
		listAssets:  usecases.NewListAssetsUseCase(repos.Assets, assignees, logger),
		recordStatus: usecases.NewRecordStatusUseCase(
			repos.Assets, repos.Statuses, repos.Allocations, publisher, txMgr, logger,
		),
		recordAllocation: usecases.NewRecordAllocationUseCase(
			repos.Assets, repos.Statuses, repos.Allocations, assignees, publisher, txMgr, logger,
		),
		history:    usecases.NewAssetHistoryUseCase(repos.Assets, repos.Statuses, repos.Allocations, logger),
		conditions: usecases.NewConditionUseCase(repos.Assets, repos.Conditions, txMgr, logger),
		incidents: usecases.NewIncidentUseCase(
			repos.Assets, repos.Statuses, repos.Allocations, repos.Incidents, publisher, txMgr, logger,
		),
		specs:    usecases.NewSpecsUseCase(repos.Specs, repos.Assets, logger),
		register: usecases.NewAssetRegisterUseCase(repos.Assets, repos.Catalog, assignees, logger),
	}
}

func (s *ServiceDDD) CreateAsset(ctx context.Context, cmd usecases.CreateAssetCommand) (*dto.AssetDTO, error) {
	return s.createAsset.Execute(ctx, cmd)
}

func (s *ServiceDDD) UpdateAsset(ctx context.Context, cmd usecases.UpdateAssetCommand) (*dto.AssetDTO, error) {
	return s.updateAsset.Execute(ctx, cmd)
}

func (s *ServiceDDD) DeleteAsset(ctx context.Context, id uint) error {
	return s.deleteAsset.Execute(ctx, id)
}

func (s *ServiceDDD) GetAsset(ctx context.Context, id uint) (*dto.AssetDTO, error) {
	return s.getAsset.Execute(ctx, id)
}

func (s *ServiceDDD) GetAssetByUUID(ctx context.Context, uuid string) (*dto.AssetDTO, error) {
	return s.getAsset.ExecuteByUUID(ctx, uuid)
}

func (s *ServiceDDD) ListAssets(ctx context.Context, query usecases.ListAssetsQuery) (*usecases.ListAssetsResult, error) {
	return s.listAssets.Execute(ctx, query)
}

// ListOwnerAssets lists the assets currently held by a user, department or
// workspace.
func (s *ServiceDDD) ListOwnerAssets(ctx context.Context, ref assignee.Ref, page, pageSize int) (*usecases.ListAssetsResult, error) {
	return s.listAssets.ExecuteForOwner(ctx, ref, page, pageSize)
}

func (s *ServiceDDD) RecordStatus(ctx context.Context, cmd usecases.RecordStatusCommand) (*dto.StatusRecordDTO, error) {
	return s.recordStatus.Execute(ctx, cmd)
}

func (s *ServiceDDD) RecordAllocation(ctx context.Context, cmd usecases.RecordAllocationCommand) (*dto.AllocationRecordDTO, error) {
	return s.recordAllocation.Execute(ctx, cmd)
}

func (s *ServiceDDD) StatusHistory(ctx context.Context, assetID uint) ([]*dto.StatusRecordDTO, error) {
	return s.history.StatusHistory(ctx, assetID)
}

func (s *ServiceDDD) AllocationHistory(ctx context.Context, assetID uint) ([]*dto.AllocationRecordDTO, error) {
	return s.history.AllocationHistory(ctx, assetID)
}

func (s *ServiceDDD) StockSummary(ctx context.Context, modelNumberID uint) ([]dto.StatusCount, error) {
	return s.history.StockSummary(ctx, modelNumberID)
}

func (s *ServiceDDD) AddCondition(ctx context.Context, assetID uint, notes string) (*dto.ConditionDTO, error) {
	return s.conditions.Add(ctx, assetID, notes)
}

func (s *ServiceDDD) ListConditions(ctx context.Context, assetID uint) ([]*dto.ConditionDTO, error) {
	return s.conditions.List(ctx, assetID)
}

func (s *ServiceDDD) ReportIncident(ctx context.Context, cmd usecases.ReportIncidentCommand) (*dto.IncidentReportDTO, error) {
	return s.incidents.Report(ctx, cmd)
}

func (s *ServiceDDD) ListIncidents(ctx context.Context, assetID uint) ([]*dto.IncidentReportDTO, error) {
	return s.incidents.List(ctx, assetID)
}

func (s *ServiceDDD) CreateSpecs(ctx context.Context, tuple asset.SpecsTuple) (*dto.SpecsDTO, error) {
	return s.specs.Create(ctx, tuple)
}

func (s *ServiceDDD) GetSpecs(ctx context.Context, id uint) (*dto.SpecsDTO, error) {
	return s.specs.Get(ctx, id)
}

func (s *ServiceDDD) ListSpecs(ctx context.Context, page, pageSize int) (*usecases.ListSpecsResult, error) {
	return s.specs.List(ctx, page, pageSize)
}

func (s *ServiceDDD) DeleteSpecs(ctx context.Context, id uint) error {
	return s.specs.Delete(ctx, id)
}

func (s *ServiceDDD) AssetRegister(ctx context.Context, query usecases.ListAssetsQuery) ([]*dto.RegisterEntryDTO, error) {
	return s.register.Execute(ctx, query)
}
