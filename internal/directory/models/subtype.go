package models

import "strings"

// SubtypeTag names a concrete officeholder kind. It is stored on every person
// and selects the jurisdiction predicate used for location lookups.
type SubtypeTag string

const (
	// SubtypePerson is the base kind. Plain persons carry no location data.
	SubtypePerson          SubtypeTag = "Person"
	SubtypeStateLegislator SubtypeTag = "StateLegislator"
	SubtypeGovernor        SubtypeTag = "Governor"
)

// NormalizeSubtype maps a stored type value to a tag; blank means Person.
func NormalizeSubtype(raw string) SubtypeTag {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SubtypePerson
	}
	return SubtypeTag(raw)
}

func (t SubtypeTag) String() string { return string(t) }

// PartialPath is the rendering selector shared by every shipped subtype.
func PartialPath(SubtypeTag) string {
	return "people/person"
}
