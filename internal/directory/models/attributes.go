package models

// RawAttributes is a record exactly as the data source delivered it.
type RawAttributes map[string]any

// Attributes is the canonical, adapter-produced shape of a person's mutable
// fields. It has no identity field: imported records never choose their id.
type Attributes struct {
	Slug                 string
	FullName             string
	FirstName            string
	MiddleName           string
	LastName             string
	Suffixes             string
	HonorificPrefix      string
	Gender               string
	Email                string
	PhotoURL             string
	Type                 SubtypeTag
	Active               bool
	Chamber              string
	District             string
	PoliticalPosition    string
	TwitterID            string
	AdditionalTwitterIDs []string
	VotesmartID          string
	Roles                []Role
	OldRoles             []RoleSnapshot
	Extra                map[string]any
}

// Apply copies attrs onto p. Empty strings and nil slices leave the existing
// value in place; Active is always assigned.
func (p *Person) Apply(attrs Attributes) {
	setIf(&p.Slug, attrs.Slug)
	setIf(&p.FullName, attrs.FullName)
	setIf(&p.FirstName, attrs.FirstName)
	setIf(&p.MiddleName, attrs.MiddleName)
	setIf(&p.LastName, attrs.LastName)
	setIf(&p.Suffixes, attrs.Suffixes)
	setIf(&p.HonorificPrefix, attrs.HonorificPrefix)
	setIf(&p.Gender, attrs.Gender)
	setIf(&p.Email, attrs.Email)
	setIf(&p.PhotoURL, attrs.PhotoURL)
	if attrs.Type != "" {
		p.Type = attrs.Type
	}
	p.Active = attrs.Active
	setIf(&p.Chamber, attrs.Chamber)
	setIf(&p.District, attrs.District)
	setIf(&p.PoliticalPosition, attrs.PoliticalPosition)
	setIf(&p.TwitterID, attrs.TwitterID)
	setIf(&p.VotesmartID, attrs.VotesmartID)
	if attrs.AdditionalTwitterIDs != nil {
		p.AdditionalTwitterIDs = attrs.AdditionalTwitterIDs
	}
	if attrs.Roles != nil {
		p.Roles = attrs.Roles
	}
	if attrs.OldRoles != nil {
		p.OldRoles = attrs.OldRoles
	}
	if len(attrs.Extra) > 0 {
		if p.Extra == nil {
			p.Extra = make(map[string]any, len(attrs.Extra))
		}
		for k, v := range attrs.Extra {
			p.Extra[k] = v
		}
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
