//go:build integration

package person_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"askthem/internal/directory/ports"
	"askthem/internal/directory/store/person"
	platformmongo "askthem/internal/platform/mongo"
	"askthem/pkg/testutil/containers"
)

type MongoSuite struct {
	contractSuite
}

func TestMongoSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	mongo := containers.GetManager().GetMongo(t)
	s := new(MongoSuite)
	s.newStore = func() ports.PersonStore {
		if err := mongo.DropCollections(context.Background(), platformmongo.PeopleCollection); err != nil {
			t.Fatalf("reset people: %v", err)
		}
		return person.NewMongo(mongo.DB)
	}
	suite.Run(t, s)
}
