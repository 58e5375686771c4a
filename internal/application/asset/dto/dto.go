package dto

import (
	"time"

	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/shared/mapper"
)

type AssetDTO struct {
	ID            uint      `json:"id"`
	UUID          string    `json:"uuid"`
	AssetCode     *string   `json:"asset_code"`
	SerialNumber  *string   `json:"serial_number"`
	ModelNumberID uint      `json:"model_number_id"`
	AssignedToID  *uint     `json:"assigned_to_id"`
	AssignedTo    string    `json:"assigned_to,omitempty"`
	CurrentStatus string    `json:"current_status"`
	Notes         string    `json:"notes"`
	SpecsID       *uint     `json:"specs_id"`
	Verified      bool      `json:"verified"`
	PurchaseDate  *string   `json:"purchase_date"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type StatusRecordDTO struct {
	ID             uint      `json:"id"`
	AssetID        uint      `json:"asset_id"`
	CurrentStatus  string    `json:"current_status"`
	PreviousStatus *string   `json:"previous_status"`
	CreatedAt      time.Time `json:"created_at"`
}

type AllocationRecordDTO struct {
	ID              uint      `json:"id"`
	AssetID         uint      `json:"asset_id"`
	CurrentOwnerID  *uint     `json:"current_owner_id"`
	PreviousOwnerID *uint     `json:"previous_owner_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type ConditionDTO struct {
	ID        uint      `json:"id"`
	AssetID   uint      `json:"asset_id"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type IncidentReportDTO struct {
	ID                     uint      `json:"id"`
	AssetID                uint      `json:"asset_id"`
	IncidentType           string    `json:"incident_type"`
	IncidentLocation       string    `json:"incident_location"`
	IncidentDescription    string    `json:"incident_description"`
	InjuriesSustained      string    `json:"injuries_sustained"`
	LossOfProperty         string    `json:"loss_of_property"`
	Witnesses              string    `json:"witnesses"`
	PoliceAbstractObtained bool      `json:"police_abstract_obtained"`
	SubmittedByID          *uint     `json:"submitted_by_id"`
	CreatedAt              time.Time `json:"created_at"`
}

type SpecsDTO struct {
	ID                uint      `json:"id"`
	YearOfManufacture int       `json:"year_of_manufacture"`
	ProcessorSpeed    string    `json:"processor_speed"`
	ScreenSize        string    `json:"screen_size"`
	ProcessorType     string    `json:"processor_type"`
	Storage           string    `json:"storage"`
	Memory            string    `json:"memory"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DateLayout is the wire format of purchase dates.
const DateLayout = "2006-01-02"

func ToAssetDTO(a *asset.Asset) *AssetDTO {
	if a == nil {
		return nil
	}
	out := &AssetDTO{
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
		s := d.Format(DateLayout)
		out.PurchaseDate = &s
	}
	return out
}

func ToAssetDTOs(assets []*asset.Asset) []*AssetDTO {
	return mapper.MapSlice(assets, ToAssetDTO)
}

func ToStatusRecordDTO(r *asset.StatusRecord) *StatusRecordDTO {
	out := &StatusRecordDTO{
		ID:            r.ID(),
		AssetID:       r.AssetID(),
		CurrentStatus: r.CurrentStatus().String(),
		CreatedAt:     r.CreatedAt(),
	}
	if p := r.PreviousStatus(); p != nil {
		out.PreviousStatus = mapper.Ptr(p.String())
	}
	return out
}

func ToStatusRecordDTOs(records []*asset.StatusRecord) []*StatusRecordDTO {
	return mapper.MapSlice(records, ToStatusRecordDTO)
}

func ToAllocationRecordDTO(r *asset.AllocationRecord) *AllocationRecordDTO {
	return &AllocationRecordDTO{
		ID:              r.ID(),
		AssetID:         r.AssetID(),
		CurrentOwnerID:  r.CurrentOwnerID(),
		PreviousOwnerID: r.PreviousOwnerID(),
		CreatedAt:       r.CreatedAt(),
	}
}

func ToAllocationRecordDTOs(records []*asset.AllocationRecord) []*AllocationRecordDTO {
	return mapper.MapSlice(records, ToAllocationRecordDTO)
}

func ToConditionDTO(c *asset.Condition) *ConditionDTO {
	return &ConditionDTO{ID: c.ID(), AssetID: c.AssetID(), Notes: c.Notes(), CreatedAt: c.CreatedAt()}
}

func ToIncidentReportDTO(r *asset.IncidentReport) *IncidentReportDTO {
	d := r.Details()
	return &IncidentReportDTO{
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

func ToSpecsDTO(s *asset.Specs) *SpecsDTO {
	t := s.Tuple()
	return &SpecsDTO{
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

// StatusCount is one row of the per-status summary of a model number.
type StatusCount struct {
	Status vo.AssetStatus `json:"status"`
	Count  int64          `json:"count"`
}

// RegisterEntryDTO is one line of the asset register export.
type RegisterEntryDTO struct {
	UUID          string
	AssetCode     string
	SerialNumber  string
	Category      string
	SubCategory   string
	Type          string
	Make          string
	ModelNumber   string
	CurrentStatus string
	AssignedTo    string
	Verified      bool
	PurchaseDate  string
	Notes         string
	CreatedAt     time.Time
}
