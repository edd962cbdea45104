package handler

import (
	"askthem/internal/directory/importer"
	"askthem/internal/directory/models"
	id "askthem/pkg/domain"
)

type personResponse struct {
	*models.Person
	PoliticalPositionTitle string   `json:"political_position_title,omitempty"`
	CommitteeIDs           []string `json:"committee_ids,omitempty"`
	VotesmartURL           string   `json:"votesmart_url,omitempty"`
	Partial                string   `json:"partial"`
}

type peopleResponse struct {
	People []personResponse `json:"people"`
	Count  int              `json:"count"`
}

type mostRecentResponse struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value,omitempty"`
	Found     bool   `json:"found"`
}

type verifiedResponse struct {
	PersonID id.PersonID `json:"person_id"`
	Verified bool        `json:"verified"`
}

type importRequest struct {
	Adapter string `json:"adapter"`
}

type importResponse struct {
	Jurisdiction  string           `json:"jurisdiction"`
	AlreadyLoaded bool             `json:"already_loaded"`
	Imported      int              `json:"imported"`
	People        []personResponse `json:"people"`
}

func toPersonResponse(p *models.Person) personResponse {
	return personResponse{
		Person:                 p,
		PoliticalPositionTitle: p.PoliticalPositionTitle(),
		CommitteeIDs:           p.CommitteeIDs(),
		VotesmartURL:           p.VotesmartURL(models.VotesmartBiography, ""),
		Partial:                models.PartialPath(p.Type),
	}
}

func toPeopleResponse(people []*models.Person) peopleResponse {
	out := make([]personResponse, len(people))
	for i, p := range people {
		out[i] = toPersonResponse(p)
	}
	return peopleResponse{People: out, Count: len(out)}
}

func toImportResponse(res *importer.Result) importResponse {
	people := make([]personResponse, len(res.People))
	for i, p := range res.People {
		people[i] = toPersonResponse(p)
	}
	return importResponse{
		Jurisdiction:  string(res.Jurisdiction),
		AlreadyLoaded: res.AlreadyLoaded,
		Imported:      len(people),
		People:        people,
	}
}
