package dto

type CreateAssetRequest struct {
	AssetCode     string `json:"asset_code" binding:"required_without=SerialNumber"`
	SerialNumber  string `json:"serial_number" binding:"required_without=AssetCode"`
	ModelNumberID uint   `json:"model_number_id" binding:"required"`
	Notes         string `json:"notes"`
	SpecsID       *uint  `json:"specs_id"`
	PurchaseDate  string `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	Verified      bool   `json:"verified"`
}

// UpdateAssetRequest carries the fields API consumers may edit. Status and
// owner only change through the status and allocation endpoints.
type UpdateAssetRequest struct {
	AssetCode    *string `json:"asset_code"`
	SerialNumber *string `json:"serial_number"`
	Notes        *string `json:"notes"`
	SpecsID      *uint   `json:"specs_id"`
	PurchaseDate *string `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	Verified     *bool   `json:"verified"`
	Version      int     `json:"version"`
}

type RecordStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RecordAllocationRequest names the new owner either by assignee id or by
// kind and entity id. Both empty de-allocates.
type RecordAllocationRequest struct {
	AssigneeID   *uint  `json:"assignee_id"`
	AssigneeKind string `json:"assignee_kind" binding:"omitempty,oneof=user department workspace"`
	AssigneeRef  uint   `json:"assignee_ref"`
}

type AddConditionRequest struct {
	Notes string `json:"notes" binding:"required"`
}

type ReportIncidentRequest struct {
	IncidentType           string `json:"incident_type" binding:"required,oneof=Loss Damage"`
	IncidentLocation       string `json:"incident_location" binding:"required"`
	IncidentDescription    string `json:"incident_description" binding:"required"`
	InjuriesSustained      string `json:"injuries_sustained"`
	LossOfProperty         string `json:"loss_of_property"`
	Witnesses              string `json:"witnesses"`
	PoliceAbstractObtained bool   `json:"police_abstract_obtained"`
	MarkAsset              bool   `json:"mark_asset"`
}

type CreateSpecsRequest struct {
	YearOfManufacture int    `json:"year_of_manufacture"`
	ProcessorSpeed    string `json:"processor_speed"`
	ScreenSize        string `json:"screen_size"`
	ProcessorType     string `json:"processor_type"`
	Storage           string `json:"storage"`
	Memory            string `json:"memory"`
}
