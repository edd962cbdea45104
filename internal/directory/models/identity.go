package models

import (
	"time"

	id "askthem/pkg/domain"
)

// IdentityStatus tracks review of a user's claim to be a person.
type IdentityStatus string

const (
	IdentityPending  IdentityStatus = "pending"
	IdentityVerified IdentityStatus = "verified"
	IdentityRejected IdentityStatus = "rejected"
)

// IsValid reports whether s is a known status.
func (s IdentityStatus) IsValid() bool {
	switch s {
	case IdentityPending, IdentityVerified, IdentityRejected:
		return true
	}
	return false
}

// Identity links a user account to exactly one person. A person may have
// several, e.g. the officeholder and their staff.
type Identity struct {
	ID        id.IdentityID  `json:"id" bson:"-"`
	PersonID  id.PersonID    `json:"person_id" bson:"-"`
	UserID    id.UserID      `json:"user_id" bson:"-"`
	Status    IdentityStatus `json:"status" bson:"status"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}
