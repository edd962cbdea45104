package importer

import (
	"fmt"
	"sort"

	"askthem/internal/directory/models"
	dErrors "askthem/pkg/domain-errors"
)

// openStatesFields maps legislator payload keys to canonical wire names.
var openStatesFields = map[string]string{
	"leg_id":       "slug",
	"full_name":    "full_name",
	"first_name":   "first_name",
	"middle_name":  "middle_name",
	"last_name":    "last_name",
	"suffixes":     "suffixes",
	"+title":       "honorific_prefix",
	"+gender":      "gender",
	"email":        "email",
	"photo_url":    "photo_url",
	"active":       "active",
	"chamber":      "chamber",
	"district":     "district",
	"votesmart_id": "votesmart_id",
	"roles":        "roles",
	"old_roles":    "old_roles",
	"+twitter":     "twitter_id",
}

// OpenStatesAdapter maps OpenStates legislator records. Records without a
// type become state legislators, and a political position is derived from
// the chamber when the payload has none.
type OpenStatesAdapter struct{}

func (OpenStatesAdapter) Adapt(raw models.RawAttributes) (models.Attributes, error) {
	var attrs models.Attributes
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, owned := storeOwned[k]; owned || k == "state" {
			continue
		}
		target, ok := openStatesFields[k]
		if !ok {
			target = k
		}
		if err := assign(&attrs, target, raw[k]); err != nil {
			return models.Attributes{}, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("openstates field %s", k))
		}
	}
	if attrs.FullName == "" {
		return models.Attributes{}, dErrors.New(dErrors.CodeValidation, "openstates record has no full_name")
	}
	if attrs.Type == "" {
		attrs.Type = models.SubtypeStateLegislator
	}
	if attrs.PoliticalPosition == "" && attrs.Type == models.SubtypeStateLegislator {
		switch attrs.Chamber {
		case "upper":
			attrs.PoliticalPosition = "state_senator"
		case "lower":
			attrs.PoliticalPosition = "state_representative"
		}
	}
	return attrs, nil
}
