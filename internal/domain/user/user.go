// Package user holds the profile projection of the external identity
// provider. Authentication, sessions, and MFA enrollment live upstream;
// this aggregate only carries what the marketplace needs: a display name,
// a contact email, and the admin flag checked on adjudication calls.
package user

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	id          uint
	displayName string
	email       string
	isAdmin     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(email, displayName string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	now := time.Now()

	return &User{
		displayName: strings.TrimSpace(displayName),
		email:       email,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructUser(id uint, email, displayName string, isAdmin bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:          id,
		displayName: displayName,
		email:       email,
		isAdmin:     isAdmin,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) Email() string {
	return u.email
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
