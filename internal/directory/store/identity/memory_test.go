package identity_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"askthem/internal/directory/ports"
	"askthem/internal/directory/store/identity"
)

type InMemorySuite struct {
	contractSuite
}

func TestInMemorySuite(t *testing.T) {
	s := new(InMemorySuite)
	s.newStore = func() ports.IdentityStore { return identity.NewInMemory() }
	suite.Run(t, s)
}
