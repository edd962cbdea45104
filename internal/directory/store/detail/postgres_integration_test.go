//go:build integration

package detail_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"askthem/internal/directory/ports"
	"askthem/internal/directory/store/detail"
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
	s.newStore = func() ports.DetailStore {
		if err := pg.TruncateTables(context.Background(), "person_details"); err != nil {
			t.Fatalf("truncate person_details: %v", err)
		}
		return detail.NewPostgres(pg.DB)
	}
	suite.Run(t, s)
}
