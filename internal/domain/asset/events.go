package asset

import (
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/shared/events"
)

const (
	EventStatusChanged = "asset.status_changed"
	EventAllocated     = "asset.allocated"
	EventDeallocated   = "asset.deallocated"
)

// StatusChangedEvent is published after a status row commits.
type StatusChangedEvent struct {
	events.BaseEvent
	AssetLabel     string
	ModelNumberID  uint
	CurrentStatus  vo.AssetStatus
	PreviousStatus *vo.AssetStatus
}

func NewStatusChangedEvent(a *Asset, record *StatusRecord) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:      events.NewBaseEvent(a.ID(), EventStatusChanged),
		AssetLabel:     a.Label(),
		ModelNumberID:  a.ModelNumberID(),
		CurrentStatus:  record.CurrentStatus(),
		PreviousStatus: record.PreviousStatus(),
	}
}

// AllocationChangedEvent is published after an allocation row commits. The
// event type is EventAllocated for a new owner and EventDeallocated otherwise.
type AllocationChangedEvent struct {
	events.BaseEvent
	AssetLabel      string
	ModelNumberID   uint
	CurrentOwnerID  *uint
	PreviousOwnerID *uint
}

func NewAllocationChangedEvent(a *Asset, record *AllocationRecord) AllocationChangedEvent {
	eventType := EventAllocated
	if record.IsDeallocation() {
		eventType = EventDeallocated
	}
	return AllocationChangedEvent{
		BaseEvent:       events.NewBaseEvent(a.ID(), eventType),
		AssetLabel:      a.Label(),
		ModelNumberID:   a.ModelNumberID(),
		CurrentOwnerID:  record.CurrentOwnerID(),
		PreviousOwnerID: record.PreviousOwnerID(),
	}
}
