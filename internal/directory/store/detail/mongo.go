package detail

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"askthem/internal/directory/models"
	platformmongo "askthem/internal/platform/mongo"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

// detailDocument is keyed by the owning person's id.
type detailDocument struct {
	PersonID            string `bson:"_id"`
	models.PersonDetail `bson:",inline"`
}

type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{coll: db.Collection(platformmongo.DetailsCollection)}
}

func (s *Mongo) FindByPersonID(ctx context.Context, personID id.PersonID) (*models.PersonDetail, error) {
	var doc detailDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": personID.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, platformmongo.WrapError("find person detail", err)
	}
	u, err := uuid.Parse(doc.PersonID)
	if err != nil {
		return nil, fmt.Errorf("decode person detail id %q: %w", doc.PersonID, err)
	}
	d := doc.PersonDetail
	d.PersonID = id.PersonID(u)
	d.Persisted = true
	return &d, nil
}

func (s *Mongo) Save(ctx context.Context, detail *models.PersonDetail) error {
	doc := detailDocument{PersonID: detail.PersonID.String(), PersonDetail: *detail}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.PersonID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return platformmongo.WrapError("save person detail", err)
	}
	detail.Persisted = true
	return nil
}
