package organization

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string {
	return string(r)
}

var ErrEmailRequired = errors.New("email is required")

// User is a member of staff. Users authenticate with bearer tokens and can own
// assets.
type User struct {
	id           uint
	email        string
	name         string
	role         Role
	centreID     *uint
	departmentID *uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, name string, role Role, centreID, departmentID *uint) (*User, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}
	now := time.Now().UTC()
	return &User{
		email:        normalized,
		name:         strings.TrimSpace(name),
		role:         role,
		centreID:     centreID,
		departmentID: departmentID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, email, name string, role Role, centreID, departmentID *uint, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		role:         role,
		centreID:     centreID,
		departmentID: departmentID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("invalid email address: %q", email)
	}
	return email, nil
}

// UpdateProfile replaces the editable fields. The e-mail is the login identity
// and does not change.
func (u *User) UpdateProfile(name string, role Role, centreID, departmentID *uint) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %q", role)
	}
	u.name = strings.TrimSpace(name)
	u.role = role
	u.centreID = centreID
	u.departmentID = departmentID
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) CentreID() *uint      { return u.centreID }
func (u *User) DepartmentID() *uint  { return u.departmentID }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }

// DisplayName falls back to the e-mail when no name was recorded.
func (u *User) DisplayName() string {
	if u.name != "" {
		return u.name
	}
	return u.email
}

func (u *User) SetID(id uint) error {
	return setID(&u.id, id, "user")
}
