package detail_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

type contractSuite struct {
	suite.Suite
	ctx      context.Context
	store    ports.DetailStore
	newStore func() ports.DetailStore
}

func (s *contractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *contractSuite) TestSaveAndFind() {
	pid := id.NewPersonID()
	d := &models.PersonDetail{
		PersonID:           pid,
		Biography:          "Served three terms.",
		Links:              []models.Link{{URL: "https://example.org", Note: "campaign"}},
		SignatureThreshold: 250,
		VotesmartID:        "9026",
		UpdatedAt:          time.Now().UTC().Truncate(time.Millisecond),
	}

	s.Require().NoError(s.store.Save(s.ctx, d))
	s.True(d.Persisted)

	found, err := s.store.FindByPersonID(s.ctx, pid)
	s.Require().NoError(err)
	s.Equal(pid, found.PersonID)
	s.Equal("Served three terms.", found.Biography)
	s.Equal(d.Links, found.Links)
	s.Equal(250, found.SignatureThreshold)
	s.True(found.Persisted)
}

func (s *contractSuite) TestMissingDetailIsNotFound() {
	_, err := s.store.FindByPersonID(s.ctx, id.NewPersonID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}
