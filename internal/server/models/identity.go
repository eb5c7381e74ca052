// Package models defines server-side data models shared by services and
// repositories.
package models

import "time"

// Identity is one user/profile row. A record may carry only credential
// fields (signup without profile), only profile fields (anonymous profile
// submission) or both; ID is the join key across both creation paths.
//
// Empty strings mean "not set".
type Identity struct {
	ID string

	// Credential fields, written only by signup.
	Email        string
	PasswordHash string
	DisplayName  string

	// Profile fields, written only by profile submission.
	JobTitle   string
	Experience string
	Interests  string
	ResumeText string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCredentials reports whether the record can be used to log in.
func (i *Identity) HasCredentials() bool {
	return i.Email != "" && i.PasswordHash != ""
}

// HasProfile reports whether a profile has been submitted for the record.
func (i *Identity) HasProfile() bool {
	return i.JobTitle != ""
}

// Clone returns a copy that can be handed out without sharing state.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// Profile is the input of a profile submission.
type Profile struct {
	JobTitle   string
	Experience string
	Interests  string
	ResumeText string
}
