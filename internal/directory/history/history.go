// Package history answers "what is this person's current value for X" when
// the top-level field is blank, e.g. inactive legislators who no longer carry
// a chamber or district.
package history

import "askthem/internal/directory/models"

// MostRecent returns the top-level value of attr when set. Otherwise it walks
// OldRoles newest term first, roles in stored order, and returns the first
// non-empty value. ok is false when nothing defines attr.
func MostRecent(p *models.Person, attr string) (string, bool) {
	if p == nil || attr == "" {
		return "", false
	}
	if v := p.Attribute(attr); v != "" {
		return v, true
	}
	for i := len(p.OldRoles) - 1; i >= 0; i-- {
		for _, role := range p.OldRoles[i].Roles {
			if v := role[attr]; v != "" {
				return v, true
			}
		}
	}
	return "", false
}
