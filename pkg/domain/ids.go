// Package domain holds typed identifiers and primitives shared across modules.
package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	dErrors "askthem/pkg/domain-errors"
)

// PersonID identifies a stored officeholder.
type PersonID uuid.UUID

// IdentityID identifies an external-account link to a person.
type IdentityID uuid.UUID

// UserID identifies an external account that may be linked to a person.
type UserID uuid.UUID

func (id PersonID) String() string   { return uuid.UUID(id).String() }
func (id IdentityID) String() string { return uuid.UUID(id).String() }
func (id UserID) String() string     { return uuid.UUID(id).String() }

func (id PersonID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id IdentityID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }

// Ids travel as canonical uuid strings in JSON and query parameters.
func (id PersonID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id IdentityID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id UserID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }

func (id *PersonID) UnmarshalText(b []byte) error   { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *IdentityID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *UserID) UnmarshalText(b []byte) error     { return (*uuid.UUID)(id).UnmarshalText(b) }

// NewPersonID returns a fresh random PersonID.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

// NewIdentityID returns a fresh random IdentityID.
func NewIdentityID() IdentityID { return IdentityID(uuid.New()) }

// NewUserID returns a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

func ParsePersonID(s string) (PersonID, error) {
	u, err := parseUUID(s, "person id")
	return PersonID(u), err
}

func ParseIdentityID(s string) (IdentityID, error) {
	u, err := parseUUID(s, "identity id")
	return IdentityID(u), err
}

func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user id")
	return UserID(u), err
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", label)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s", label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be nil", label)
	}
	return u, nil
}

// JurisdictionKey names a governed location, e.g. "ca" or "ny-nyc".
// Keys are lower-case and limited to letters, digits, '-' and '_'.
type JurisdictionKey string

var jurisdictionKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// ParseJurisdictionKey normalizes s and validates it as a JurisdictionKey.
func ParseJurisdictionKey(s string) (JurisdictionKey, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "jurisdiction is required")
	}
	if !jurisdictionKeyPattern.MatchString(key) {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid jurisdiction %q", s)
	}
	return JurisdictionKey(key), nil
}

func (k JurisdictionKey) String() string { return string(k) }

func (k JurisdictionKey) IsNil() bool { return k == "" }
