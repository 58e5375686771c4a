package usecases

import (
	"context"

	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/shared/events"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

// assetLedgers appends status and allocation rows and mirrors them onto the
// asset. Every method expects to run inside a transaction; the caller saves
// the asset afterwards.
type assetLedgers struct {
	assets      asset.Repository
	statuses    asset.StatusLedger
	allocations asset.AllocationLedger
}

func (l assetLedgers) load(ctx context.Context, id uint) (*asset.Asset, error) {
	a, err := l.assets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("asset not found")
	}
	return a, nil
}

// currentStatus derives the status from the latest ledger row. An asset
// without rows is Available.
func (l assetLedgers) currentStatus(ctx context.Context, assetID uint) (vo.AssetStatus, *asset.StatusRecord, error) {
	latest, err := l.statuses.Latest(ctx, assetID)
	if err != nil {
		return "", nil, err
	}
	if latest == nil {
		return vo.StatusAvailable, nil, nil
	}
	return latest.CurrentStatus(), latest, nil
}

// appendStatus records a status change. Moving to Available also appends a
// release row whenever the asset has allocation history.
func (l assetLedgers) appendStatus(ctx context.Context, a *asset.Asset, status vo.AssetStatus) (*asset.StatusRecord, []events.DomainEvent, error) {
	_, latest, err := l.currentStatus(ctx, a.ID())
	if err != nil {
		return nil, nil, err
	}
	record, err := asset.NewStatusRecord(a.ID(), status, latest)
	if err != nil {
		return nil, nil, errors.NewValidationError(err.Error(), "status")
	}
	if err := l.statuses.Append(ctx, record); err != nil {
		return nil, nil, err
	}
	if _, err := a.ApplyStatus(status); err != nil {
		return nil, nil, errors.NewValidationError(err.Error(), "status")
	}

	published := []events.DomainEvent{asset.NewStatusChangedEvent(a, record)}
	if !status.IsAvailable() {
		return record, published, nil
	}

	lastAllocation, err := l.allocations.Latest(ctx, a.ID())
	if err != nil {
		return nil, nil, err
	}
	if lastAllocation == nil {
		return record, published, nil
	}
	release, err := asset.NewAllocationRecord(a.ID(), nil, lastAllocation)
	if err != nil {
		return nil, nil, err
	}
	if err := l.allocations.Append(ctx, release); err != nil {
		return nil, nil, err
	}
	a.AssignTo(nil)
	return record, append(published, asset.NewAllocationChangedEvent(a, release)), nil
}

// appendAllocation records a new owner, or a release when ownerID is nil.
// Allocating to an owner also moves the asset to Allocated.
func (l assetLedgers) appendAllocation(ctx context.Context, a *asset.Asset, ownerID *uint) (*asset.AllocationRecord, []events.DomainEvent, error) {
	status, latestStatus, err := l.currentStatus(ctx, a.ID())
	if err != nil {
		return nil, nil, err
	}
	if !status.IsAvailable() {
		return nil, nil, errors.NewValidationError("You can only allocate available assets", "status")
	}

	lastAllocation, err := l.allocations.Latest(ctx, a.ID())
	if err != nil {
		return nil, nil, err
	}
	record, err := asset.NewAllocationRecord(a.ID(), ownerID, lastAllocation)
	if err != nil {
		return nil, nil, errors.NewValidationError(err.Error(), "assignee_id")
	}
	if err := l.allocations.Append(ctx, record); err != nil {
		return nil, nil, err
	}
	a.AssignTo(ownerID)
	published := []events.DomainEvent{asset.NewAllocationChangedEvent(a, record)}

	if ownerID == nil {
		return record, published, nil
	}
	statusRecord, err := asset.NewStatusRecord(a.ID(), vo.StatusAllocated, latestStatus)
	if err != nil {
		return nil, nil, err
	}
	if err := l.statuses.Append(ctx, statusRecord); err != nil {
		return nil, nil, err
	}
	if _, err := a.ApplyStatus(vo.StatusAllocated); err != nil {
		return nil, nil, err
	}
	return record, append(published, asset.NewStatusChangedEvent(a, statusRecord)), nil
}

// publishAfterCommit hands committed events to the dispatcher. Delivery
// failures are logged and never undo the write.
func publishAfterCommit(publisher events.EventPublisher, log logger.Interface, published []events.DomainEvent) {
	if publisher == nil || len(published) == 0 {
		return
	}
	if err := publisher.PublishAll(published); err != nil {
		log.Warnw("failed to publish asset events", "count", len(published), "error", err)
	}
}
