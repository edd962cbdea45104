// Package importer loads officeholders from an external source, once per
// jurisdiction, through a pluggable attribute adapter.
package importer

import (
	"fmt"
	"sort"
	"strings"

	"askthem/internal/directory/models"
	dErrors "askthem/pkg/domain-errors"
	pstrings "askthem/pkg/platform/strings"
)

// Adapter transforms a raw source record into canonical attributes. It must
// be pure: no I/O and no dependence on previous records.
type Adapter interface {
	Adapt(raw models.RawAttributes) (models.Attributes, error)
}

// AdapterFunc lets a plain function serve as an Adapter.
type AdapterFunc func(raw models.RawAttributes) (models.Attributes, error)

func (f AdapterFunc) Adapt(raw models.RawAttributes) (models.Attributes, error) { return f(raw) }

// Adapter names accepted by AdapterByName.
const (
	AdapterIdentity   = "identity"
	AdapterOpenStates = "openstates"
)

// AdapterByName resolves a strategy name. Blank selects the identity adapter.
func AdapterByName(name string) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AdapterIdentity:
		return IdentityAdapter{}, nil
	case AdapterOpenStates:
		return OpenStatesAdapter{}, nil
	}
	return nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown adapter %q", name)
}

// storeOwned keys are never taken from a raw record: the store assigns ids,
// the pipeline assigns the jurisdiction and timestamps, and only the featured
// enforcer may touch the featured flag.
var storeOwned = map[string]struct{}{
	"id":              {},
	"_id":             {},
	"featured":        {},
	"jurisdiction_id": {},
	"created_at":      {},
	"updated_at":      {},
}

// IdentityAdapter assigns raw keys to the canonical field of the same wire
// name. Unknown keys are kept in Extra.
type IdentityAdapter struct{}

func (IdentityAdapter) Adapt(raw models.RawAttributes) (models.Attributes, error) {
	var attrs models.Attributes
	// Sorted keys keep error messages deterministic.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, owned := storeOwned[k]; owned {
			continue
		}
		if err := assign(&attrs, k, raw[k]); err != nil {
			return models.Attributes{}, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("attribute %s", k))
		}
	}
	return attrs, nil
}

// assign sets the canonical field named by key, or records it in Extra.
func assign(attrs *models.Attributes, key string, v any) error {
	var err error
	switch key {
	case "slug":
		attrs.Slug, err = stringValue(v)
	case "full_name":
		attrs.FullName, err = stringValue(v)
	case "first_name":
		attrs.FirstName, err = stringValue(v)
	case "middle_name":
		attrs.MiddleName, err = stringValue(v)
	case "last_name":
		attrs.LastName, err = stringValue(v)
	case "suffixes":
		attrs.Suffixes, err = stringValue(v)
	case "honorific_prefix":
		attrs.HonorificPrefix, err = stringValue(v)
	case "gender":
		attrs.Gender, err = stringValue(v)
	case "email":
		attrs.Email, err = stringValue(v)
	case "photo_url":
		attrs.PhotoURL, err = stringValue(v)
	case "type":
		var s string
		s, err = stringValue(v)
		if s != "" {
			attrs.Type = models.NormalizeSubtype(s)
		}
	case "active":
		attrs.Active, err = boolValue(v)
	case "chamber":
		attrs.Chamber, err = stringValue(v)
	case "district":
		attrs.District, err = stringValue(v)
	case "political_position":
		attrs.PoliticalPosition, err = stringValue(v)
	case "twitter_id":
		attrs.TwitterID, err = stringValue(v)
	case "additional_twitter_ids":
		var handles []string
		handles, err = stringsValue(v)
		attrs.AdditionalTwitterIDs = pstrings.NormalizeHandles(handles)
	case "votesmart_id":
		attrs.VotesmartID, err = stringValue(v)
	case "roles":
		attrs.Roles, err = rolesValue(v)
	case "old_roles":
		attrs.OldRoles, err = snapshotsValue(v)
	default:
		if attrs.Extra == nil {
			attrs.Extra = make(map[string]any)
		}
		attrs.Extra[key] = v
	}
	return err
}
