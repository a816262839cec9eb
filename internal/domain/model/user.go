package model

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the stored record. Password holds the bcrypt hash and is persisted
// to disk, so it must never be serialized on an API response path; handlers
// and services return PublicUser instead.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Password  string    `json:"password"`
	Location  string    `json:"location,omitempty"`
	Verified  *bool     `json:"verified,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) RecordID() string { return u.ID }

// PublicUser is the sanitized view of a User: everything except the password.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Location  string    `json:"location"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public derives the sanitized view. Records written by earlier deployments
// may lack location, verified or createdAt; those default to "Not specified",
// true and now respectively.
func (u User) Public() PublicUser {
	location := u.Location
	if location == "" {
		location = "Not specified"
	}
	verified := true
	if u.Verified != nil {
		verified = *u.Verified
	}
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Location:  location,
		Verified:  verified,
		CreatedAt: createdAt,
	}
}

// UserSummary is the short join view embedded in event registration listings.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
