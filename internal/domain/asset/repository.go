package asset

import (
	"context"

	vo "art/internal/domain/asset/valueobjects"
)

// Get methods return nil, nil when the row does not exist.

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	// Update writes the asset only if its stored version still equals
	// a.Version(). A stale version yields a conflict error.
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Asset, error)
	GetByUUID(ctx context.Context, uuid string) (*Asset, error)
	// ExistsByAssetCode and ExistsBySerialNumber ignore excludeID (0 for none).
	ExistsByAssetCode(ctx context.Context, code string, excludeID uint) (bool, error)
	ExistsBySerialNumber(ctx context.Context, serial string, excludeID uint) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Asset, int64, error)
	CountByStatusAndModelNumber(ctx context.Context, status vo.AssetStatus, modelNumberID uint) (int64, error)
	CountBySpecs(ctx context.Context, specsID uint) (int64, error)
	CountByAssignee(ctx context.Context, assigneeID uint) (int64, error)
}

type Filter struct {
	Status        *vo.AssetStatus
	ModelNumberID *uint
	AssignedToID  *uint
	Verified      *bool
	Search        string
	Page          int
	PageSize      int
}

type StatusLedger interface {
	Append(ctx context.Context, record *StatusRecord) error
	// Latest returns nil when the asset has no status rows.
	Latest(ctx context.Context, assetID uint) (*StatusRecord, error)
	// History returns all rows oldest first.
	History(ctx context.Context, assetID uint) ([]*StatusRecord, error)
}

type AllocationLedger interface {
	Append(ctx context.Context, record *AllocationRecord) error
	// Latest returns nil when the asset was never allocated.
	Latest(ctx context.Context, assetID uint) (*AllocationRecord, error)
	History(ctx context.Context, assetID uint) ([]*AllocationRecord, error)
}

type ConditionRepository interface {
	Create(ctx context.Context, c *Condition) error
	ListByAsset(ctx context.Context, assetID uint) ([]*Condition, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, r *IncidentReport) error
	ListByAsset(ctx context.Context, assetID uint) ([]*IncidentReport, error)
}

type SpecsRepository interface {
	Create(ctx context.Context, s *Specs) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Specs, error)
	GetByTuple(ctx context.Context, tuple SpecsTuple) (*Specs, error)
	List(ctx context.Context, page, pageSize int) ([]*Specs, int64, error)
}
