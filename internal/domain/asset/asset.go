// Package asset contains the Asset aggregate, its two append-only ledgers
// (status and allocation) and the satellite records attached to an asset.
package asset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "art/internal/domain/asset/valueobjects"
)

var (
	ErrIdentityRequired    = errors.New("either asset code or serial number is required")
	ErrModelNumberRequired = errors.New("model number is required")
)

// Asset is a physical unit. CurrentStatus and AssignedToID mirror the latest
// rows of the status and allocation ledgers; they only change through
// ApplyStatus and AssignTo, which the ledger use cases call.
type Asset struct {
	id            uint
	uuid          string
	assetCode     *string
	serialNumber  *string
	modelNumberID uint
	assignedToID  *uint
	currentStatus vo.AssetStatus
	notes         string
	specsID       *uint
	verified      bool
	purchaseDate  *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAsset(assetCode, serialNumber string, modelNumberID uint) (*Asset, error) {
	code := optionalString(assetCode)
	serial := optionalString(serialNumber)
	if code == nil && serial == nil {
		return nil, ErrIdentityRequired
	}
	if modelNumberID == 0 {
		return nil, ErrModelNumberRequired
	}

	now := time.Now().UTC()
	return &Asset{
		uuid:          uuid.NewString(),
		assetCode:     code,
		serialNumber:  serial,
		modelNumberID: modelNumberID,
		currentStatus: vo.StatusAvailable,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// AssetState carries persisted columns into ReconstructAsset.
type AssetState struct {
	ID            uint
	UUID          string
	AssetCode     *string
	SerialNumber  *string
	ModelNumberID uint
	AssignedToID  *uint
	CurrentStatus vo.AssetStatus
	Notes         string
	SpecsID       *uint
	Verified      bool
	PurchaseDate  *time.Time
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructAsset(s AssetState) (*Asset, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if s.UUID == "" {
		return nil, fmt.Errorf("asset %d has no uuid", s.ID)
	}
	if !s.CurrentStatus.IsValid() {
		return nil, fmt.Errorf("asset %d has invalid status %q", s.ID, s.CurrentStatus)
	}
	return &Asset{
		id:            s.ID,
		uuid:          s.UUID,
		assetCode:     s.AssetCode,
		serialNumber:  s.SerialNumber,
		modelNumberID: s.ModelNumberID,
		assignedToID:  s.AssignedToID,
		currentStatus: s.CurrentStatus,
		notes:         s.Notes,
		specsID:       s.SpecsID,
		verified:      s.Verified,
		purchaseDate:  s.PurchaseDate,
		version:       s.Version,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (a *Asset) ID() uint                      { return a.id }
func (a *Asset) UUID() string                  { return a.uuid }
func (a *Asset) AssetCode() *string            { return a.assetCode }
func (a *Asset) SerialNumber() *string         { return a.serialNumber }
func (a *Asset) ModelNumberID() uint           { return a.modelNumberID }
func (a *Asset) AssignedToID() *uint           { return a.assignedToID }
func (a *Asset) CurrentStatus() vo.AssetStatus { return a.currentStatus }
func (a *Asset) Notes() string                 { return a.notes }
func (a *Asset) SpecsID() *uint                { return a.specsID }
func (a *Asset) Verified() bool                { return a.verified }
func (a *Asset) PurchaseDate() *time.Time      { return a.purchaseDate }
func (a *Asset) Version() int                  { return a.version }
func (a *Asset) CreatedAt() time.Time          { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time          { return a.updatedAt }

// Label is the short human identifier used in messages: the asset code when
// present, otherwise the serial number.
func (a *Asset) Label() string {
	if a.assetCode != nil {
		return *a.assetCode
	}
	if a.serialNumber != nil {
		return *a.serialNumber
	}
	return a.uuid
}

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

// IncrementVersion is called by the repository after a version-checked write.
func (a *Asset) IncrementVersion() {
	a.version++
}

// ApplyStatus mirrors a newly appended status row onto the asset. Moving to
// Available clears the owner. It reports whether an owner was cleared.
func (a *Asset) ApplyStatus(status vo.AssetStatus) (cleared bool, err error) {
	if !status.IsValid() {
		return false, fmt.Errorf("invalid asset status: %q", status)
	}
	a.currentStatus = status
	if status.IsAvailable() && a.assignedToID != nil {
		a.assignedToID = nil
		cleared = true
	}
	a.updatedAt = time.Now().UTC()
	return cleared, nil
}

// AssignTo mirrors a newly appended allocation row onto the asset.
func (a *Asset) AssignTo(assigneeID *uint) {
	a.assignedToID = assigneeID
	a.updatedAt = time.Now().UTC()
}

// UpdateDetails replaces the fields API consumers may edit directly.
func (a *Asset) UpdateDetails(notes string, verified bool, purchaseDate *time.Time, specsID *uint) {
	a.notes = notes
	a.verified = verified
	a.purchaseDate = purchaseDate
	a.specsID = specsID
	a.updatedAt = time.Now().UTC()
}

// ChangeIdentity replaces asset code and serial number, keeping at least one.
func (a *Asset) ChangeIdentity(assetCode, serialNumber string) error {
	code := optionalString(assetCode)
	serial := optionalString(serialNumber)
	if code == nil && serial == nil {
		return ErrIdentityRequired
	}
	a.assetCode = code
	a.serialNumber = serial
	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *Asset) SetNotes(notes string) {
	a.notes = notes
	a.updatedAt = time.Now().UTC()
}
