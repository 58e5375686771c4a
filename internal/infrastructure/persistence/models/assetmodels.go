package models

import (
	"time"

	"gorm.io/datatypes"

	"art/internal/shared/constants"
)

type AssetModel struct {
	ID            uint            `gorm:"primaryKey"`
	UUID          string          `gorm:"column:uuid;size:36;not null;uniqueIndex"`
	AssetCode     *string         `gorm:"size:100;uniqueIndex"`
	SerialNumber  *string         `gorm:"size:100;uniqueIndex"`
	ModelNumberID uint            `gorm:"not null;index"`
	AssignedToID  *uint           `gorm:"index"`
	CurrentStatus string          `gorm:"size:20;not null;default:Available;index"`
	Notes         string          `gorm:"type:text"`
	SpecsID       *uint           `gorm:"index"`
	Verified      bool            `gorm:"not null;default:false"`
	PurchaseDate  *datatypes.Date `gorm:"type:date"`
	Version       int             `gorm:"not null;default:1"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}

// AssetAssigneeModel stores the owner sum type as three nullable columns of
// which exactly one is set. Each column is unique so get-or-create is safe.
type AssetAssigneeModel struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       *uint     `gorm:"uniqueIndex"`
	DepartmentID *uint     `gorm:"uniqueIndex"`
	WorkspaceID  *uint     `gorm:"uniqueIndex"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (AssetAssigneeModel) TableName() string {
	return constants.TableAssetAssignees
}

type AssetStatusModel struct {
	ID             uint      `gorm:"primaryKey"`
	AssetID        uint      `gorm:"not null;index:idx_asset_statuses_asset_created,priority:1"`
	CurrentStatus  string    `gorm:"size:20;not null"`
	PreviousStatus *string   `gorm:"size:20"`
	CreatedAt      time.Time `gorm:"not null;precision:6;index:idx_asset_statuses_asset_created,priority:2"`
}

func (AssetStatusModel) TableName() string {
	return constants.TableAssetStatuses
}

type AllocationHistoryModel struct {
	ID              uint      `gorm:"primaryKey"`
	AssetID         uint      `gorm:"not null;index:idx_allocation_histories_asset_created,priority:1"`
	CurrentOwnerID  *uint     `gorm:"index"`
	PreviousOwnerID *uint     `gorm:"index"`
	CreatedAt       time.Time `gorm:"not null;precision:6;index:idx_allocation_histories_asset_created,priority:2"`
}

func (AllocationHistoryModel) TableName() string {
	return constants.TableAllocationHistories
}

type AssetConditionModel struct {
	ID        uint      `gorm:"primaryKey"`
	AssetID   uint      `gorm:"not null;index"`
	Notes     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (AssetConditionModel) TableName() string {
	return constants.TableAssetConditions
}

type AssetIncidentReportModel struct {
	ID                     uint      `gorm:"primaryKey"`
	AssetID                uint      `gorm:"not null;index"`
	IncidentType           string    `gorm:"size:20;not null"`
	IncidentLocation       string    `gorm:"size:255;not null"`
	IncidentDescription    string    `gorm:"type:text;not null"`
	InjuriesSustained      string    `gorm:"type:text"`
	LossOfProperty         string    `gorm:"type:text"`
	Witnesses              string    `gorm:"type:text"`
	PoliceAbstractObtained bool      `gorm:"not null;default:false"`
	SubmittedByID          *uint     `gorm:"index"`
	CreatedAt              time.Time `gorm:"not null"`
}

func (AssetIncidentReportModel) TableName() string {
	return constants.TableAssetIncidentReports
}

// AssetSpecsModel columns are NOT NULL with empty defaults so the unique
// tuple index also catches duplicates of partially filled specs.
type AssetSpecsModel struct {
	ID                uint      `gorm:"primaryKey"`
	YearOfManufacture int       `gorm:"not null;default:0;uniqueIndex:uk_asset_specs_tuple,priority:1"`
	ProcessorSpeed    string    `gorm:"size:50;not null;default:'';uniqueIndex:uk_asset_specs_tuple,priority:2"`
	ScreenSize        string    `gorm:"size:50;not null;default:'';uniqueIndex:uk_asset_specs_tuple,priority:3"`
	ProcessorType     string    `gorm:"size:100;not null;default:'';uniqueIndex:uk_asset_specs_tuple,priority:4"`
	Storage           string    `gorm:"size:50;not null;default:'';uniqueIndex:uk_asset_specs_tuple,priority:5"`
	Memory            string    `gorm:"size:50;not null;default:'';uniqueIndex:uk_asset_specs_tuple,priority:6"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (AssetSpecsModel) TableName() string {
	return constants.TableAssetSpecs
}
