package valueobjects

import "fmt"

// AssetStatus is the lifecycle state of a physical asset. Any state may follow
// any other; the status ledger records every change.
type AssetStatus string

const (
	StatusAvailable AssetStatus = "Available"
	StatusAllocated AssetStatus = "Allocated"
	StatusLost      AssetStatus = "Lost"
	StatusDamaged   AssetStatus = "Damaged"
)

var validAssetStatuses = map[AssetStatus]bool{
	StatusAvailable: true,
	StatusAllocated: true,
	StatusLost:      true,
	StatusDamaged:   true,
}

// AllAssetStatuses lists the statuses in display order.
func AllAssetStatuses() []AssetStatus {
	return []AssetStatus{StatusAvailable, StatusAllocated, StatusLost, StatusDamaged}
}

func (s AssetStatus) String() string {
	return string(s)
}

func (s AssetStatus) IsValid() bool {
	return validAssetStatuses[s]
}

func (s AssetStatus) IsAvailable() bool {
	return s == StatusAvailable
}

func (s AssetStatus) IsAllocated() bool {
	return s == StatusAllocated
}

// ParseAssetStatus accepts the canonical spelling only.
func ParseAssetStatus(s string) (AssetStatus, error) {
	status := AssetStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid asset status: %q", s)
	}
	return status, nil
}
