// Package models holds the gorm row types. Relationships are enforced by the
// SQL migrations and by the use cases; the models declare no associations.
package models

// All returns every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&AssetCategoryModel{},
		&AssetSubCategoryModel{},
		&AssetTypeModel{},
		&AssetMakeModel{},
		&AssetModelNumberModel{},
		&CentreModel{},
		&OfficeFloorModel{},
		&WorkspaceModel{},
		&DepartmentModel{},
		&UserModel{},
		&AssetAssigneeModel{},
		&AssetSpecsModel{},
		&AssetModel{},
		&AssetStatusModel{},
		&AllocationHistoryModel{},
		&AssetConditionModel{},
		&AssetIncidentReportModel{},
	}
}
