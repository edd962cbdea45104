package models

import (
	"time"

	id "askthem/pkg/domain"
)

// Link is an external page about a person.
type Link struct {
	URL  string `json:"url" bson:"url"`
	Note string `json:"note,omitempty" bson:"note,omitempty"`
}

// DefaultSignatureThreshold is the number of signatures a question needs
// before the person is asked to answer it.
const DefaultSignatureThreshold = 500

// PersonDetail holds fields the data source does not provide, keyed by person.
type PersonDetail struct {
	PersonID           id.PersonID `json:"person_id" bson:"-"`
	Biography          string      `json:"biography,omitempty" bson:"biography,omitempty"`
	Links              []Link      `json:"links,omitempty" bson:"links,omitempty"`
	SignatureThreshold int         `json:"signature_threshold" bson:"signature_threshold"`
	VotesmartID        string      `json:"votesmart_id,omitempty" bson:"votesmart_id,omitempty"`
	UpdatedAt          time.Time   `json:"updated_at" bson:"updated_at"`

	// Persisted is false for a synthesized default that was never saved.
	Persisted bool `json:"persisted" bson:"-"`
}

// DefaultDetail synthesizes an unsaved detail for a person without one.
func DefaultDetail(p *Person) *PersonDetail {
	return &PersonDetail{
		PersonID:           p.ID,
		SignatureThreshold: DefaultSignatureThreshold,
		VotesmartID:        p.VotesmartID,
	}
}
