package asset

import (
	"fmt"
	"time"

	vo "art/internal/domain/asset/valueobjects"
)

// StatusRecord is one row of the append-only status ledger.
type StatusRecord struct {
	id             uint
	assetID        uint
	currentStatus  vo.AssetStatus
	previousStatus *vo.AssetStatus
	createdAt      time.Time
}

// NewStatusRecord links the new status to the asset's latest ledger row, which
// may be nil for the first record.
func NewStatusRecord(assetID uint, status vo.AssetStatus, latest *StatusRecord) (*StatusRecord, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid asset status: %q", status)
	}
	var previous *vo.AssetStatus
	if latest != nil {
		p := latest.currentStatus
		previous = &p
	}
	return &StatusRecord{
		assetID:        assetID,
		currentStatus:  status,
		previousStatus: previous,
		createdAt:      time.Now().UTC(),
	}, nil
}

func ReconstructStatusRecord(id, assetID uint, current vo.AssetStatus, previous *vo.AssetStatus, createdAt time.Time) *StatusRecord {
	return &StatusRecord{
		id:             id,
		assetID:        assetID,
		currentStatus:  current,
		previousStatus: previous,
		createdAt:      createdAt,
	}
}

func (r *StatusRecord) ID() uint                        { return r.id }
func (r *StatusRecord) AssetID() uint                   { return r.assetID }
func (r *StatusRecord) CurrentStatus() vo.AssetStatus   { return r.currentStatus }
func (r *StatusRecord) PreviousStatus() *vo.AssetStatus { return r.previousStatus }
func (r *StatusRecord) CreatedAt() time.Time            { return r.createdAt }

func (r *StatusRecord) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("status record ID is already set")
	}
	r.id = id
	return nil
}

// AllocationRecord is one row of the append-only allocation ledger. A nil
// current owner marks a de-allocation.
type AllocationRecord struct {
	id              uint
	assetID         uint
	currentOwnerID  *uint
	previousOwnerID *uint
	createdAt       time.Time
}

// NewAllocationRecord links the new owner to the asset's latest allocation row,
// which may be nil for the first record.
func NewAllocationRecord(assetID uint, owner *uint, latest *AllocationRecord) (*AllocationRecord, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	var previous *uint
	if latest != nil && latest.currentOwnerID != nil {
		p := *latest.currentOwnerID
		previous = &p
	}
	return &AllocationRecord{
		assetID:         assetID,
		currentOwnerID:  owner,
		previousOwnerID: previous,
		createdAt:       time.Now().UTC(),
	}, nil
}

func ReconstructAllocationRecord(id, assetID uint, current, previous *uint, createdAt time.Time) *AllocationRecord {
	return &AllocationRecord{
		id:              id,
		assetID:         assetID,
		currentOwnerID:  current,
		previousOwnerID: previous,
		createdAt:       createdAt,
	}
}

func (r *AllocationRecord) ID() uint               { return r.id }
func (r *AllocationRecord) AssetID() uint          { return r.assetID }
func (r *AllocationRecord) CurrentOwnerID() *uint  { return r.currentOwnerID }
func (r *AllocationRecord) PreviousOwnerID() *uint { return r.previousOwnerID }
func (r *AllocationRecord) CreatedAt() time.Time   { return r.createdAt }

func (r *AllocationRecord) IsDeallocation() bool {
	return r.currentOwnerID == nil
}

func (r *AllocationRecord) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("allocation record ID is already set")
	}
	r.id = id
	return nil
}
