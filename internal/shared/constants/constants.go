package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// User roles
	RoleAdmin = "admin"
	RoleUser  = "user"

	// Catalog tables
	TableAssetCategories    = "asset_categories"
	TableAssetSubCategories = "asset_sub_categories"
	TableAssetTypes         = "asset_types"
	TableAssetMakes         = "asset_makes"
	TableAssetModelNumbers  = "asset_model_numbers"

	// Organization tables
	TableCentres      = "centres"
	TableOfficeFloors = "office_floors"
	TableWorkspaces   = "workspaces"
	TableDepartments  = "departments"
	TableUsers        = "users"

	// Asset tables
	TableAssets               = "assets"
	TableAssetAssignees       = "asset_assignees"
	TableAssetStatuses        = "asset_statuses"
	TableAllocationHistories  = "allocation_histories"
	TableAssetConditions      = "asset_conditions"
	TableAssetIncidentReports = "asset_incident_reports"
	TableAssetSpecs           = "asset_specs"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
