// Package models defines the data shapes exchanged with the remote banking API.
package models

import "time"

// UserProfile is the account holder's profile as returned by the server.
// Unknown fields in the server response are ignored at the boundary.
type UserProfile struct {
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	PhoneNum   string    `json:"phoneNum"`
	AccountNum string    `json:"accountNum"`
	CreatedAt  time.Time `json:"creationDate"`
	UpdatedAt  time.Time `json:"modificationDate"`
}

// FullName returns the profile's display name.
func (u UserProfile) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Registration is the payload for creating a new user.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	PhoneNum  string `json:"phoneNum"`
}

// ProfileUpdate is a partial update: only non-nil fields are sent,
// absent fields are left untouched server-side.
type ProfileUpdate struct {
	Email    *string `json:"email,omitempty"`
	PhoneNum *string `json:"phoneNum,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (p ProfileUpdate) Empty() bool {
	return p.Email == nil && p.PhoneNum == nil && p.Password == nil
}
