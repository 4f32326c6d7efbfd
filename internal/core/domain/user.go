package domain

import "time"

// Gender of a registered user as captured at signup.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// User is an account that can authenticate. Doctor and patient profiles hang off it
// by UserID; they are never subtypes of it.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Gender       Gender    `json:"gender"`
	DateOfBirth  time.Time `json:"dob"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	Country      string    `json:"country"`
	Roles        Roles     `json:"roles"`
	Enabled      bool      `json:"enabled"`
	Timestamps
}

// IsDoctor reports whether the account carries the DOCTOR role.
func (u User) IsDoctor() bool {
	return u.Roles.Has(RoleDoctor)
}

// PrimaryRole is the first role granted at registration.
func (u User) PrimaryRole() Role {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0]
}

// IdentityConflicts records which unique identity fields are already taken.
type IdentityConflicts struct {
	Username    bool
	Email       bool
	PhoneNumber bool
}

// Any reports whether at least one field conflicts.
func (c IdentityConflicts) Any() bool {
	return c.Username || c.Email || c.PhoneNumber
}

// Identity is the authenticated caller bound to a request context.
type Identity struct {
	UserID   string
	Username string
	Email    string
	Roles    Roles
}

// NewIdentity projects a user into the per-request identity.
func NewIdentity(u User) Identity {
	return Identity{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    u.Roles,
	}
}
