package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	id "askthem/pkg/domain"
)

// Role is a single role assignment as delivered by the data source, e.g.
// {"type": "member", "chamber": "lower", "district": "12", "committee_id": "CAC000001"}.
type Role map[string]string

// RoleSnapshot groups the roles a person held during one term.
type RoleSnapshot struct {
	Term  string `json:"term" bson:"term"`
	Roles []Role `json:"roles" bson:"roles"`
}

// Person is an officeholder. OldRoles is ordered oldest first.
type Person struct {
	ID                   id.PersonID    `json:"id" bson:"-"`
	Slug                 string         `json:"slug,omitempty" bson:"slug,omitempty"`
	FullName             string         `json:"full_name" bson:"full_name"`
	FirstName            string         `json:"first_name,omitempty" bson:"first_name,omitempty"`
	MiddleName           string         `json:"middle_name,omitempty" bson:"middle_name,omitempty"`
	LastName             string         `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Suffixes             string         `json:"suffixes,omitempty" bson:"suffixes,omitempty"`
	HonorificPrefix      string         `json:"honorific_prefix,omitempty" bson:"honorific_prefix,omitempty"`
	Gender               string         `json:"gender,omitempty" bson:"gender,omitempty"`
	Email                string         `json:"email,omitempty" bson:"email,omitempty"`
	PhotoURL             string         `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Jurisdiction         string         `json:"jurisdiction_id" bson:"jurisdiction_id"`
	Type                 SubtypeTag     `json:"type" bson:"type"`
	Featured             bool           `json:"featured" bson:"featured"`
	Active               bool           `json:"active" bson:"active"`
	Chamber              string         `json:"chamber,omitempty" bson:"chamber,omitempty"`
	District             string         `json:"district,omitempty" bson:"district,omitempty"`
	PoliticalPosition    string         `json:"political_position,omitempty" bson:"political_position,omitempty"`
	TwitterID            string         `json:"twitter_id,omitempty" bson:"twitter_id,omitempty"`
	AdditionalTwitterIDs []string       `json:"additional_twitter_ids,omitempty" bson:"additional_twitter_ids,omitempty"`
	VotesmartID          string         `json:"votesmart_id,omitempty" bson:"votesmart_id,omitempty"`
	Roles                []Role         `json:"roles,omitempty" bson:"roles,omitempty"`
	OldRoles             []RoleSnapshot `json:"old_roles,omitempty" bson:"old_roles,omitempty"`
	Extra                map[string]any `json:"extra,omitempty" bson:"extra,omitempty"`
	CreatedAt            time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at" bson:"updated_at"`
}

// NewPerson builds an unsaved person for a jurisdiction with a fresh id.
func NewPerson(jurisdiction id.JurisdictionKey, now time.Time) *Person {
	return &Person{
		ID:           id.NewPersonID(),
		Jurisdiction: string(jurisdiction),
		Type:         SubtypePerson,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Attribute returns the top-level value stored under a wire name. Extra
// values are consulted for names without a dedicated field.
func (p *Person) Attribute(name string) string {
	switch name {
	case "slug", "leg_id":
		return p.Slug
	case "full_name", "name":
		return p.FullName
	case "first_name":
		return p.FirstName
	case "middle_name":
		return p.MiddleName
	case "last_name":
		return p.LastName
	case "suffixes":
		return p.Suffixes
	case "honorific_prefix":
		return p.HonorificPrefix
	case "gender":
		return p.Gender
	case "email":
		return p.Email
	case "photo_url":
		return p.PhotoURL
	case "jurisdiction_id":
		return p.Jurisdiction
	case "type":
		return string(p.Type)
	case "chamber":
		return p.Chamber
	case "district":
		return p.District
	case "political_position":
		return p.PoliticalPosition
	case "twitter_id":
		return p.TwitterID
	case "votesmart_id":
		return p.VotesmartID
	}
	if v, ok := p.Extra[name]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}

// PoliticalPositionTitle humanizes PoliticalPosition: "state_senator"
// becomes "State senator".
func (p *Person) PoliticalPositionTitle() string {
	pos := strings.TrimSpace(strings.ReplaceAll(p.PoliticalPosition, "_", " "))
	if pos == "" {
		return ""
	}
	pos = strings.ToLower(pos)
	first, size := utf8.DecodeRuneInString(pos)
	return string(unicode.ToUpper(first)) + pos[size:]
}

// CommitteeIDs lists committee ids referenced by current roles, first
// occurrence order, without duplicates.
func (p *Person) CommitteeIDs() []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, role := range p.Roles {
		cid := role["committee_id"]
		if cid == "" {
			continue
		}
		if _, ok := seen[cid]; ok {
			continue
		}
		seen[cid] = struct{}{}
		ids = append(ids, cid)
	}
	return ids
}

// Votesmart sections linked from a person's profile.
const (
	VotesmartBiography        = "biography"
	VotesmartEvaluations      = "evaluations"
	VotesmartKeyVotes         = "key-votes"
	VotesmartPublicStatements = "public-statements"
	VotesmartCampaignFinance  = "campaign-finance"
)

// VotesmartURL links to a section of the person's Vote Smart profile. The
// person's own votesmart id wins over fallbackID; with neither, it returns "".
func (p *Person) VotesmartURL(section, fallbackID string) string {
	vsID := p.VotesmartID
	if vsID == "" {
		vsID = fallbackID
	}
	if vsID == "" {
		return ""
	}
	url := "http://votesmart.org/candidate/"
	if section != "" {
		url += section + "/"
	}
	return url + vsID
}

// CurrentDistricts returns the districts named by current roles, falling back
// to the top-level district.
func (p *Person) CurrentDistricts() []string {
	districts := make([]string, 0, 1)
	for _, role := range p.Roles {
		if d := role["district"]; d != "" {
			districts = append(districts, d)
		}
	}
	if len(districts) == 0 && p.District != "" {
		districts = append(districts, p.District)
	}
	return districts
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	c := *p
	if p.AdditionalTwitterIDs != nil {
		c.AdditionalTwitterIDs = append([]string(nil), p.AdditionalTwitterIDs...)
	}
	c.Roles = cloneRoles(p.Roles)
	if p.OldRoles != nil {
		c.OldRoles = make([]RoleSnapshot, len(p.OldRoles))
		for i, snap := range p.OldRoles {
			c.OldRoles[i] = RoleSnapshot{Term: snap.Term, Roles: cloneRoles(snap.Roles)}
		}
	}
	if p.Extra != nil {
		c.Extra = make(map[string]any, len(p.Extra))
		for k, v := range p.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}

func cloneRoles(roles []Role) []Role {
	if roles == nil {
		return nil
	}
	out := make([]Role, len(roles))
	for i, role := range roles {
		r := make(Role, len(role))
		for k, v := range role {
			r[k] = v
		}
		out[i] = r
	}
	return out
}
