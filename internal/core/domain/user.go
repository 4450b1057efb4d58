package domain

import (
	"errors"
	"strings"
)

// Role distinguishes the two kinds of account on the platform.
type Role string

const (
	RolePatient   Role = "patient"
	RoleTherapist Role = "therapist"
)

var (
	ErrNoSession = errors.New("no active session")
	ErrForbidden = errors.New("access forbidden")
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleTherapist
}

// RoleFromEmail infers the account role from an email address: any address
// containing "therapist" belongs to a therapist.
func RoleFromEmail(email string) Role {
	if strings.Contains(email, "therapist") {
		return RoleTherapist
	}
	return RolePatient
}

// User is an authenticated identity or a therapist catalog record.
// The JSON layout is the persisted session snapshot.
type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            Role     `json:"userType"`
	ProfileImage    string   `json:"profileImage,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
}

// FirstName returns the first word of the user's display name.
func (u User) FirstName() string {
	if f := strings.Fields(u.Name); len(f) > 0 {
		return f[0]
	}
	return u.Name
}

// Clone returns a deep copy of u.
func (u User) Clone() User {
	out := u
	if u.Specializations != nil {
		out.Specializations = append([]string(nil), u.Specializations...)
	}
	if u.Rating != nil {
		r := *u.Rating
		out.Rating = &r
	}
	return out
}

// ProfilePatch holds the editable profile fields. Nil fields are left
// untouched by Apply.
type ProfilePatch struct {
	Name            *string
	Email           *string
	ProfileImage    *string
	Bio             *string
	Specializations *[]string
	Rating          *float64
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.ProfileImage == nil &&
		p.Bio == nil && p.Specializations == nil && p.Rating == nil
}

// Apply returns a copy of u with every non-nil field of p merged in.
func (u User) Apply(p ProfilePatch) User {
	out := u.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.ProfileImage != nil {
		out.ProfileImage = *p.ProfileImage
	}
	if p.Bio != nil {
		out.Bio = *p.Bio
	}
	if p.Specializations != nil {
		out.Specializations = append([]string(nil), (*p.Specializations)...)
	}
	if p.Rating != nil {
		r := *p.Rating
		out.Rating = &r
	}
	return out
}
