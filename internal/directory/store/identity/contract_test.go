package identity_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	id "askthem/pkg/domain"
)

type contractSuite struct {
	suite.Suite
	ctx      context.Context
	store    ports.IdentityStore
	newStore func() ports.IdentityStore
}

func (s *contractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *contractSuite) identity(personID id.PersonID, status models.IdentityStatus, createdAt time.Time) *models.Identity {
	ident := &models.Identity{
		ID:        id.NewIdentityID(),
		PersonID:  personID,
		UserID:    id.UserID(uuid.New()),
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	s.Require().NoError(s.store.Save(s.ctx, ident))
	return ident
}

func (s *contractSuite) TestListAndCount() {
	person := id.NewPersonID()
	other := id.NewPersonID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	staff := s.identity(person, models.IdentityPending, base.Add(time.Minute))
	official := s.identity(person, models.IdentityVerified, base)
	s.identity(other, models.IdentityVerified, base)

	s.Run("lists a person's identities oldest first", func() {
		got, err := s.store.ListByPerson(s.ctx, person)
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(official.ID, got[0].ID)
		s.Equal(staff.ID, got[1].ID)
		s.Equal(person, got[0].PersonID)
		s.Equal(official.UserID, got[0].UserID)
	})

	s.Run("counts by status", func() {
		n, err := s.store.CountByPersonAndStatus(s.ctx, person, models.IdentityVerified)
		s.Require().NoError(err)
		s.Equal(1, n)

		n, err = s.store.CountByPersonAndStatus(s.ctx, person, models.IdentityRejected)
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("status updates replace the record", func() {
		staff.Status = models.IdentityVerified
		s.Require().NoError(s.store.Save(s.ctx, staff))
		n, err := s.store.CountByPersonAndStatus(s.ctx, person, models.IdentityVerified)
		s.Require().NoError(err)
		s.Equal(2, n)
	})
}
