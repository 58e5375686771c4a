package handlers

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/application/asset/usecases"
	"art/internal/domain/asset"
	"art/internal/domain/assignee"
)

// Service interfaces for AssetHandler and SpecsHandler. *asset.ServiceDDD
// satisfies both.

type assetService interface {
	CreateAsset(ctx context.Context, cmd usecases.CreateAssetCommand) (*dto.AssetDTO, error)
	UpdateAsset(ctx context.Context, cmd usecases.UpdateAssetCommand) (*dto.AssetDTO, error)
	DeleteAsset(ctx context.Context, id uint) error
	GetAsset(ctx context.Context, id uint) (*dto.AssetDTO, error)
	GetAssetByUUID(ctx context.Context, uuid string) (*dto.AssetDTO, error)
	ListAssets(ctx context.Context, query usecases.ListAssetsQuery) (*usecases.ListAssetsResult, error)
	ListOwnerAssets(ctx context.Context, ref assignee.Ref, page, pageSize int) (*usecases.ListAssetsResult, error)
	RecordStatus(ctx context.Context, cmd usecases.RecordStatusCommand) (*dto.StatusRecordDTO, error)
	RecordAllocation(ctx context.Context, cmd usecases.RecordAllocationCommand) (*dto.AllocationRecordDTO, error)
	StatusHistory(ctx context.Context, assetID uint) ([]*dto.StatusRecordDTO, error)
	AllocationHistory(ctx context.Context, assetID uint) ([]*dto.AllocationRecordDTO, error)
	StockSummary(ctx context.Context, modelNumberID uint) ([]dto.StatusCount, error)
	AddCondition(ctx context.Context, assetID uint, notes string) (*dto.ConditionDTO, error)
	ListConditions(ctx context.Context, assetID uint) ([]*dto.ConditionDTO, error)
	ReportIncident(ctx context.Context, cmd usecases.ReportIncidentCommand) (*dto.IncidentReportDTO, error)
	ListIncidents(ctx context.Context, assetID uint) ([]*dto.IncidentReportDTO, error)
	AssetRegister(ctx context.Context, query usecases.ListAssetsQuery) ([]*dto.RegisterEntryDTO, error)
}

type specsService interface {
	CreateSpecs(ctx context.Context, tuple asset.SpecsTuple) (*dto.SpecsDTO, error)
	GetSpecs(ctx context.Context, id uint) (*dto.SpecsDTO, error)
	ListSpecs(ctx context.Context, page, pageSize int) (*usecases.ListSpecsResult, error)
	DeleteSpecs(ctx context.Context, id uint) error
}
