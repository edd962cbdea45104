//go:build integration

package person_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"askthem/internal/directory/ports"
	"askthem/internal/directory/store/person"
	"askthem/pkg/testutil/containers"
)

type PostgresSuite struct {
	contractSuite
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pg := containers.GetManager().GetPostgres(t)
	s := new(PostgresSuite)
	s.newStore = func() ports.PersonStore {
		if err := pg.TruncateTables(context.Background(), "people"); err != nil {
			t.Fatalf("truncate people: %v", err)
		}
		return person.NewPostgres(pg.DB)
	}
	suite.Run(t, s)
}
