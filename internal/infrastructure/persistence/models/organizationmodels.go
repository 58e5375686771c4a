package models

import (
	"time"

	"art/internal/shared/constants"
)

type CentreModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	Country   string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (CentreModel) TableName() string {
	return constants.TableCentres
}

type OfficeFloorModel struct {
	ID        uint      `gorm:"primaryKey"`
	Number    int       `gorm:"not null;uniqueIndex:uk_office_floors_centre_number,priority:2"`
	CentreID  uint      `gorm:"not null;uniqueIndex:uk_office_floors_centre_number,priority:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (OfficeFloorModel) TableName() string {
	return constants.TableOfficeFloors
}

type WorkspaceModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:uk_workspaces_floor_name,priority:2"`
	FloorID   uint      `gorm:"not null;uniqueIndex:uk_workspaces_floor_name,priority:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (WorkspaceModel) TableName() string {
	return constants.TableWorkspaces
}

type DepartmentModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (DepartmentModel) TableName() string {
	return constants.TableDepartments
}

type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	Name         string    `gorm:"size:255"`
	Role         string    `gorm:"size:20;not null;default:user"`
	CentreID     *uint     `gorm:"index"`
	DepartmentID *uint     `gorm:"index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
