package person_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

// contractSuite holds the behaviour every PersonStore must share. Concrete
// suites embed it and supply newStore.
type contractSuite struct {
	suite.Suite
	ctx      context.Context
	store    ports.PersonStore
	newStore func() ports.PersonStore
}

func (s *contractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *contractSuite) person(name, last string, mutate ...func(*models.Person)) *models.Person {
	p := models.NewPerson("ca", time.Now().UTC().Truncate(time.Millisecond))
	p.FullName = name
	p.LastName = last
	p.Type = models.SubtypeStateLegislator
	p.Active = true
	for _, m := range mutate {
		m(p)
	}
	s.Require().NoError(s.store.Save(s.ctx, p))
	return p
}

func names(people []*models.Person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.FullName
	}
	return out
}

func (s *contractSuite) TestSaveAndFindByID() {
	s.Run("round trips the document", func() {
		p := s.person("Jane Doe", "Doe", func(p *models.Person) {
			p.Roles = []models.Role{{"chamber": "lower", "district": "12", "committee_id": "CAC1"}}
			p.OldRoles = []models.RoleSnapshot{{Term: "2009-2010", Roles: []models.Role{{"chamber": "upper"}}}}
			p.Extra = map[string]any{"party": "Green"}
			p.AdditionalTwitterIDs = []string{"janedoe"}
		})
		found, err := s.store.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal(p.ID, found.ID)
		s.Equal("Jane Doe", found.FullName)
		s.Equal(p.Roles, found.Roles)
		s.Equal(p.OldRoles, found.OldRoles)
		s.Equal("Green", found.Extra["party"])
		s.Equal([]string{"janedoe"}, found.AdditionalTwitterIDs)
	})

	s.Run("save replaces an existing person", func() {
		p := s.person("Before", "Before")
		p.FullName = "After"
		s.Require().NoError(s.store.Save(s.ctx, p))
		found, err := s.store.FindByID(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal("After", found.FullName)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.FindByID(s.ctx, id.NewPersonID())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *contractSuite) TestFind() {
	s.person("Zed Upper", "Zed", func(p *models.Person) { p.Chamber = "upper"; p.District = "6" })
	s.person("Amy Lower", "Amy", func(p *models.Person) { p.Roles = []models.Role{{"chamber": "lower", "district": "12"}} })
	s.person("Bob Lower", "Bob", func(p *models.Person) { p.Chamber = "lower"; p.District = "12"; p.Slug = "CAL000002" })
	s.person("Old Timer", "Timer", func(p *models.Person) { p.Active = false; p.Chamber = "lower"; p.District = "12" })
	s.person("Gov", "Gov", func(p *models.Person) { p.Type = models.SubtypeGovernor })
	s.person("Plain", "Plain", func(p *models.Person) { p.Type = ""; p.Jurisdiction = "ny" })

	s.Run("orders by chamber then last name", func() {
		got, err := s.store.Find(s.ctx, ports.PersonFilter{Types: []models.SubtypeTag{models.SubtypeStateLegislator}, ActiveOnly: true})
		s.Require().NoError(err)
		s.Equal([]string{"Amy Lower", "Bob Lower", "Zed Upper"}, names(got))
	})

	s.Run("district matches top-level or role values", func() {
		got, err := s.store.Find(s.ctx, ports.PersonFilter{
			Types: []models.SubtypeTag{models.SubtypeStateLegislator}, Jurisdiction: "ca",
			Chamber: "lower", District: "12", ActiveOnly: true,
		})
		s.Require().NoError(err)
		s.Equal([]string{"Amy Lower", "Bob Lower"}, names(got))
	})

	s.Run("inactive people are included without ActiveOnly", func() {
		got, err := s.store.Find(s.ctx, ports.PersonFilter{District: "12"})
		s.Require().NoError(err)
		s.Len(got, 3)
	})

	s.Run("type membership treats blank as Person", func() {
		got, err := s.store.Find(s.ctx, ports.PersonFilter{Types: []models.SubtypeTag{models.SubtypePerson, models.SubtypeGovernor}})
		s.Require().NoError(err)
		s.ElementsMatch([]string{"Gov", "Plain"}, names(got))
	})

	s.Run("slugs", func() {
		got, err := s.store.Find(s.ctx, ports.PersonFilter{Slugs: []string{"CAL000002", "missing"}})
		s.Require().NoError(err)
		s.Equal([]string{"Bob Lower"}, names(got))
	})

	s.Run("count by jurisdiction", func() {
		n, err := s.store.CountByJurisdiction(s.ctx, "ca")
		s.Require().NoError(err)
		s.Equal(5, n)
		n, err = s.store.CountByJurisdiction(s.ctx, "tx")
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("distinct subtypes are normalized and sorted", func() {
		tags, err := s.store.DistinctSubtypes(s.ctx)
		s.Require().NoError(err)
		s.Equal([]models.SubtypeTag{models.SubtypeGovernor, models.SubtypePerson, models.SubtypeStateLegislator}, tags)
	})
}

func (s *contractSuite) TestSearchByName() {
	s.person("Anthony Rendon", "Rendon", func(p *models.Person) { p.FirstName = "Anthony" })
	s.person("Toni Atkins", "Atkins", func(p *models.Person) { p.FirstName = "Toni" })
	s.person("A.B. Smith", "Smith")

	s.Run("case-insensitive substring on any name", func() {
		got, err := s.store.SearchByName(s.ctx, "ON")
		s.Require().NoError(err)
		s.ElementsMatch([]string{"Anthony Rendon", "Toni Atkins"}, names(got))
	})

	s.Run("exact last name", func() {
		got, err := s.store.SearchByName(s.ctx, "Atkins")
		s.Require().NoError(err)
		s.Equal([]string{"Toni Atkins"}, names(got))
	})

	s.Run("pattern characters are literal", func() {
		got, err := s.store.SearchByName(s.ctx, "A.B")
		s.Require().NoError(err)
		s.Equal([]string{"A.B. Smith"}, names(got))

		got, err = s.store.SearchByName(s.ctx, ".*")
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("blank fragment matches nobody", func() {
		got, err := s.store.SearchByName(s.ctx, "")
		s.Require().NoError(err)
		s.Empty(got)
	})
}

func (s *contractSuite) TestFeatured() {
	a := s.person("A", "A", func(p *models.Person) { p.Featured = true })
	b := s.person("B", "B", func(p *models.Person) { p.Featured = true })
	c := s.person("C", "C")

	s.Run("set featured flips one flag", func() {
		s.Require().NoError(s.store.SetFeatured(s.ctx, c.ID, true))
		got, err := s.store.FindFeatured(s.ctx)
		s.Require().NoError(err)
		s.Equal([]string{"A", "B", "C"}, names(got))
	})

	s.Run("demote clears everyone except keep", func() {
		n, err := s.store.DemoteFeaturedExcept(s.ctx, b.ID)
		s.Require().NoError(err)
		s.Equal(2, n)

		got, err := s.store.FindFeatured(s.ctx)
		s.Require().NoError(err)
		s.Equal([]string{"B"}, names(got))

		found, err := s.store.FindByID(s.ctx, a.ID)
		s.Require().NoError(err)
		s.False(found.Featured)
	})

	s.Run("set featured on unknown id is not found", func() {
		s.ErrorIs(s.store.SetFeatured(s.ctx, id.NewPersonID(), true), sentinel.ErrNotFound)
	})
}
