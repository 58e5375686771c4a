package organization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCentre(t *testing.T) {
	c, err := NewCentre("  Nairobi ", "Kenya")
	require.NoError(t, err)
	assert.Equal(t, "Nairobi", c.Name())
	assert.False(t, c.CreatedAt().IsZero())

	_, err = NewCentre("", "Kenya")
	assert.ErrorIs(t, err, ErrCentreNameRequired)

	_, err = NewCentre("Lagos", " ")
	assert.ErrorIs(t, err, ErrCountryRequired)
}

func TestNewFloorAndWorkspace(t *testing.T) {
	_, err := NewFloor(-1, 1)
	assert.ErrorIs(t, err, ErrFloorNumberNegative)

	_, err = NewFloor(2, 0)
	assert.ErrorIs(t, err, ErrCentreRequired)

	f, err := NewFloor(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Number())

	_, err = NewWorkspace("  ", 1)
	assert.ErrorIs(t, err, ErrWorkspaceNameRequired)

	_, err = NewWorkspace("Pod A", 0)
	assert.ErrorIs(t, err, ErrFloorRequired)
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(" Jane.Doe@Example.com ", "Jane", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", u.Email())
	assert.Equal(t, RoleUser, u.Role())
	assert.False(t, u.IsAdmin())

	_, err = NewUser("", "x", RoleUser, nil, nil)
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = NewUser("not-an-email", "x", RoleUser, nil, nil)
	assert.Error(t, err)

	_, err = NewUser("a@b.co", "x", "owner", nil, nil)
	assert.Error(t, err)
}

func TestUserDisplayName(t *testing.T) {
	u, err := NewUser("ops@example.com", "", RoleAdmin, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", u.DisplayName())

	require.NoError(t, u.UpdateProfile("Ops Team", RoleAdmin, nil, nil))
	assert.Equal(t, "Ops Team", u.DisplayName())
}

func TestSetIDOnce(t *testing.T) {
	d, err := NewDepartment("Finance")
	require.NoError(t, err)
	require.NoError(t, d.SetID(3))
	assert.Error(t, d.SetID(4))
	assert.Error(t, (&Centre{}).SetID(0))
}
