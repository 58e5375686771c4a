package mappers

import (
	"time"

	"gorm.io/datatypes"

	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/mapper"
)

// AssetMapper handles the conversion between the asset aggregate, its ledgers
// and satellites and their rows.
type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToEntity(model *models.AssetModel) (*asset.Asset, error)
	ToEntities(rows []models.AssetModel) ([]*asset.Asset, error)

	StatusToModel(r *asset.StatusRecord) *models.AssetStatusModel
	StatusToEntity(model *models.AssetStatusModel) *asset.StatusRecord
	AllocationToModel(r *asset.AllocationRecord) *models.AllocationHistoryModel
	AllocationToEntity(model *models.AllocationHistoryModel) *asset.AllocationRecord

	ConditionToModel(c *asset.Condition) *models.AssetConditionModel
	ConditionToEntity(model *models.AssetConditionModel) *asset.Condition
	IncidentToModel(r *asset.IncidentReport) *models.AssetIncidentReportModel
	IncidentToEntity(model *models.AssetIncidentReportModel) *asset.IncidentReport
	SpecsToModel(s *asset.Specs) *models.AssetSpecsModel
	SpecsToEntity(model *models.AssetSpecsModel) *asset.Specs
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	model := &models.AssetModel{
		ID:            a.ID(),
		UUID:          a.UUID(),
		AssetCode:     a.AssetCode(),
		SerialNumber:  a.SerialNumber(),
		ModelNumberID: a.ModelNumberID(),
		AssignedToID:  a.AssignedToID(),
		CurrentStatus: a.CurrentStatus().String(),
		Notes:         a.Notes(),
		SpecsID:       a.SpecsID(),
		Verified:      a.Verified(),
		Version:       a.Version(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
	if d := a.PurchaseDate(); d != nil {
		date := datatypes.Date(*d)
		model.PurchaseDate = &date
	}
	return model
}

func (m *AssetMapperImpl) ToEntity(model *models.AssetModel) (*asset.Asset, error) {
	if model == nil {
		return nil, nil
	}
	var purchaseDate *time.Time
	if model.PurchaseDate != nil {
		d := time.Time(*model.PurchaseDate)
		purchaseDate = &d
	}
	return asset.ReconstructAsset(asset.AssetState{
		ID:            model.ID,
		UUID:          model.UUID,
		AssetCode:     model.AssetCode,
		SerialNumber:  model.SerialNumber,
		ModelNumberID: model.ModelNumberID,
		AssignedToID:  model.AssignedToID,
		CurrentStatus: vo.AssetStatus(model.CurrentStatus),
		Notes:         model.Notes,
		SpecsID:       model.SpecsID,
		Verified:      model.Verified,
		PurchaseDate:  purchaseDate,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
}

func (m *AssetMapperImpl) ToEntities(rows []models.AssetModel) ([]*asset.Asset, error) {
	ptrs := make([]*models.AssetModel, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	return mapper.MapSlicePtrWithID(ptrs, m.ToEntity, func(row *models.AssetModel) uint { return row.ID })
}

func (m *AssetMapperImpl) StatusToModel(r *asset.StatusRecord) *models.AssetStatusModel {
	model := &models.AssetStatusModel{
		ID:            r.ID(),
		AssetID:       r.AssetID(),
		CurrentStatus: r.CurrentStatus().String(),
		CreatedAt:     r.CreatedAt(),
	}
	if p := r.PreviousStatus(); p != nil {
		prev := p.String()
		model.PreviousStatus = &prev
	}
	return model
}

func (m *AssetMapperImpl) StatusToEntity(model *models.AssetStatusModel) *asset.StatusRecord {
	var previous *vo.AssetStatus
	if model.PreviousStatus != nil {
		p := vo.AssetStatus(*model.PreviousStatus)
		previous = &p
	}
	return asset.ReconstructStatusRecord(model.ID, model.AssetID, vo.AssetStatus(model.CurrentStatus), previous, model.CreatedAt)
}

func (m *AssetMapperImpl) AllocationToModel(r *asset.AllocationRecord) *models.AllocationHistoryModel {
	return &models.AllocationHistoryModel{
		ID:              r.ID(),
		AssetID:         r.AssetID(),
		CurrentOwnerID:  r.CurrentOwnerID(),
		PreviousOwnerID: r.PreviousOwnerID(),
		CreatedAt:       r.CreatedAt(),
	}
}

func (m *AssetMapperImpl) AllocationToEntity(model *models.AllocationHistoryModel) *asset.AllocationRecord {
	return asset.ReconstructAllocationRecord(model.ID, model.AssetID, model.CurrentOwnerID, model.PreviousOwnerID, model.CreatedAt)
}

func (m *AssetMapperImpl) ConditionToModel(c *asset.Condition) *models.AssetConditionModel {
	return &models.AssetConditionModel{
		ID:        c.ID(),
		AssetID:   c.AssetID(),
		Notes:     c.Notes(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *AssetMapperImpl) ConditionToEntity(model *models.AssetConditionModel) *asset.Condition {
	return asset.ReconstructCondition(model.ID, model.AssetID, model.Notes, model.CreatedAt)
}

func (m *AssetMapperImpl) IncidentToModel(r *asset.IncidentReport) *models.AssetIncidentReportModel {
	d := r.Details()
	return &models.AssetIncidentReportModel{
		ID:                     r.ID(),
		AssetID:                r.AssetID(),
		IncidentType:           r.IncidentType().String(),
		IncidentLocation:       d.Location,
		IncidentDescription:    d.Description,
		InjuriesSustained:      d.InjuriesSustained,
		LossOfProperty:         d.LossOfProperty,
		Witnesses:              d.Witnesses,
		PoliceAbstractObtained: d.PoliceAbstractObtained,
		SubmittedByID:          r.SubmittedByID(),
		CreatedAt:              r.CreatedAt(),
	}
}

func (m *AssetMapperImpl) IncidentToEntity(model *models.AssetIncidentReportModel) *asset.IncidentReport {
	return asset.ReconstructIncidentReport(
		model.ID,
		model.AssetID,
		vo.IncidentType(model.IncidentType),
		asset.IncidentDetails{
			Location:               model.IncidentLocation,
			Description:            model.IncidentDescription,
			InjuriesSustained:      model.InjuriesSustained,
			LossOfProperty:         model.LossOfProperty,
			Witnesses:              model.Witnesses,
			PoliceAbstractObtained: model.PoliceAbstractObtained,
		},
		model.SubmittedByID,
		model.CreatedAt,
	)
}

func (m *AssetMapperImpl) SpecsToModel(s *asset.Specs) *models.AssetSpecsModel {
	t := s.Tuple()
	return &models.AssetSpecsModel{
		ID:                s.ID(),
		YearOfManufacture: t.YearOfManufacture,
		ProcessorSpeed:    t.ProcessorSpeed,
		ScreenSize:        t.ScreenSize,
		ProcessorType:     t.ProcessorType,
		Storage:           t.Storage,
		Memory:            t.Memory,
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func (m *AssetMapperImpl) SpecsToEntity(model *models.AssetSpecsModel) *asset.Specs {
	return asset.ReconstructSpecs(model.ID, asset.SpecsTuple{
		YearOfManufacture: model.YearOfManufacture,
		ProcessorSpeed:    model.ProcessorSpeed,
		ScreenSize:        model.ScreenSize,
		ProcessorType:     model.ProcessorType,
		Storage:           model.Storage,
		Memory:            model.Memory,
	}, model.CreatedAt, model.UpdatedAt)
}
