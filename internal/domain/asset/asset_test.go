package asset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "art/internal/domain/asset/valueobjects"
)

func uptr(v uint) *uint { return &v }

func newTestAsset(t *testing.T) *Asset {
	t.Helper()
	a, err := NewAsset("IC001", "SN001", 1)
	require.NoError(t, err)
	require.NoError(t, a.SetID(10))
	return a
}

func TestNewAsset_Identity(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		serial  string
		wantErr error
	}{
		{name: "both set", code: "IC001", serial: "SN001"},
		{name: "code only", code: "IC002"},
		{name: "serial only", serial: "SN003"},
		{name: "both blank", wantErr: ErrIdentityRequired},
		{name: "whitespace only", code: "  ", serial: "\t", wantErr: ErrIdentityRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAsset(tt.code, tt.serial, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusAvailable, a.CurrentStatus())
			assert.Nil(t, a.AssignedToID())
			assert.NotEmpty(t, a.UUID())
			assert.Equal(t, 1, a.Version())
		})
	}
}

func TestNewAsset_RequiresModelNumber(t *testing.T) {
	_, err := NewAsset("IC001", "", 0)
	assert.ErrorIs(t, err, ErrModelNumberRequired)
}

func TestNewAsset_GeneratesDistinctUUIDs(t *testing.T) {
	a, err := NewAsset("A", "", 1)
	require.NoError(t, err)
	b, err := NewAsset("B", "", 1)
	require.NoError(t, err)
	assert.NotEqual(t, a.UUID(), b.UUID())
}

func TestAsset_Label(t *testing.T) {
	a := newTestAsset(t)
	assert.Equal(t, "IC001", a.Label())

	b, err := NewAsset("", "SN009", 1)
	require.NoError(t, err)
	assert.Equal(t, "SN009", b.Label())
}

func TestAsset_ApplyStatus(t *testing.T) {
	a := newTestAsset(t)
	a.AssignTo(uptr(3))

	cleared, err := a.ApplyStatus(vo.StatusDamaged)
	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Equal(t, uptr(3), a.AssignedToID(), "non available status keeps the owner")

	cleared, err = a.ApplyStatus(vo.StatusAvailable)
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Nil(t, a.AssignedToID())

	_, err = a.ApplyStatus("Retired")
	assert.Error(t, err)
}

func TestAsset_ChangeIdentity(t *testing.T) {
	a := newTestAsset(t)
	assert.ErrorIs(t, a.ChangeIdentity("", ""), ErrIdentityRequired)

	require.NoError(t, a.ChangeIdentity("", "SN777"))
	assert.Nil(t, a.AssetCode())
	assert.Equal(t, "SN777", *a.SerialNumber())
}

func TestReconstructAsset_Validates(t *testing.T) {
	_, err := ReconstructAsset(AssetState{ID: 0, UUID: "x", CurrentStatus: vo.StatusAvailable})
	assert.Error(t, err)

	_, err = ReconstructAsset(AssetState{ID: 1, UUID: "x", CurrentStatus: "Broken"})
	assert.Error(t, err)

	a, err := ReconstructAsset(AssetState{ID: 1, UUID: "x", CurrentStatus: vo.StatusLost, Version: 4, CreatedAt: time.Now()})
	require.NoError(t, err)
	a.IncrementVersion()
	assert.Equal(t, 5, a.Version())
}

func TestNewStatusRecord_ChainsPrevious(t *testing.T) {
	first, err := NewStatusRecord(10, vo.StatusAvailable, nil)
	require.NoError(t, err)
	assert.Nil(t, first.PreviousStatus())

	second, err := NewStatusRecord(10, vo.StatusAllocated, first)
	require.NoError(t, err)
	require.NotNil(t, second.PreviousStatus())
	assert.Equal(t, vo.StatusAvailable, *second.PreviousStatus())

	_, err = NewStatusRecord(10, "Missing", first)
	assert.Error(t, err)
}

func TestNewAllocationRecord_ChainsPreviousOwner(t *testing.T) {
	first, err := NewAllocationRecord(10, uptr(7), nil)
	require.NoError(t, err)
	assert.Nil(t, first.PreviousOwnerID())
	assert.False(t, first.IsDeallocation())

	release, err := NewAllocationRecord(10, nil, first)
	require.NoError(t, err)
	assert.True(t, release.IsDeallocation())
	assert.Equal(t, uptr(7), release.PreviousOwnerID())

	again, err := NewAllocationRecord(10, uptr(8), release)
	require.NoError(t, err)
	assert.Nil(t, again.PreviousOwnerID())
}

func TestNewIncidentReport(t *testing.T) {
	details := IncidentDetails{Location: "Lobby", Description: "Dropped"}

	r, err := NewIncidentReport(1, vo.IncidentDamage, details, nil)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusDamaged, r.ImpliedStatus())

	r, err = NewIncidentReport(1, vo.IncidentLoss, details, uptr(2))
	require.NoError(t, err)
	assert.Equal(t, vo.StatusLost, r.ImpliedStatus())

	_, err = NewIncidentReport(1, "Theft", details, nil)
	assert.Error(t, err)

	_, err = NewIncidentReport(1, vo.IncidentLoss, IncidentDetails{Location: " ", Description: "x"}, nil)
	assert.ErrorIs(t, err, ErrIncidentLocationRequired)

	_, err = NewIncidentReport(1, vo.IncidentLoss, IncidentDetails{Location: "x"}, nil)
	assert.ErrorIs(t, err, ErrIncidentDescriptionRequired)
}

func TestNewSpecs(t *testing.T) {
	s, err := NewSpecs(SpecsTuple{YearOfManufacture: 2021, Memory: " 16GB ", Storage: "512GB"})
	require.NoError(t, err)
	assert.Equal(t, "16GB", s.Tuple().Memory)

	_, err = NewSpecs(SpecsTuple{YearOfManufacture: 1900})
	assert.Error(t, err)
}

func TestNewCondition(t *testing.T) {
	_, err := NewCondition(1, "  ")
	assert.ErrorIs(t, err, ErrConditionNotesRequired)

	c, err := NewCondition(1, "Scratched lid")
	require.NoError(t, err)
	assert.Equal(t, "Scratched lid", c.Notes())
}
