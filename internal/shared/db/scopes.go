package db

import (
	"strings"

	"gorm.io/gorm"
)

// Paginate limits a query to one page. page and pageSize are expected to be
// normalised already (see utils.ValidatePagination).
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 || pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// LatestFirst orders ledger rows newest first. id breaks ties between rows
// written within the same clock tick. Use it with Find or Take: First adds its
// own primary key order ahead of scopes.
func LatestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id DESC")
	}
}

// OldestFirst is the chronological counterpart of LatestFirst.
func OldestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("id ASC")
	}
}

// NameContains filters by a case-insensitive substring of column.
func NameContains(column, term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
	}
}

