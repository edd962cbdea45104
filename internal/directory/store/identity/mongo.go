package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"askthem/internal/directory/models"
	platformmongo "askthem/internal/platform/mongo"
	id "askthem/pkg/domain"
)

type identityDocument struct {
	ID              string `bson:"_id"`
	PersonID        string `bson:"person_id"`
	UserID          string `bson:"user_id"`
	models.Identity `bson:",inline"`
}

type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{coll: db.Collection(platformmongo.IdentitiesCollection)}
}

func (s *Mongo) Save(ctx context.Context, identity *models.Identity) error {
	doc := identityDocument{
		ID:       identity.ID.String(),
		PersonID: identity.PersonID.String(),
		UserID:   identity.UserID.String(),
		Identity: *identity,
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return platformmongo.WrapError("save identity", err)
	}
	return nil
}

func (s *Mongo) ListByPerson(ctx context.Context, personID id.PersonID) ([]*models.Identity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{"person_id": personID.String()}, opts)
	if err != nil {
		return nil, platformmongo.WrapError("find identities", err)
	}
	var docs []identityDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, platformmongo.WrapError("decode identities", err)
	}
	out := make([]*models.Identity, 0, len(docs))
	for i := range docs {
		ident, err := docs[i].toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, ident)
	}
	return out, nil
}

func (s *Mongo) CountByPersonAndStatus(ctx context.Context, personID id.PersonID, status models.IdentityStatus) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"person_id": personID.String(), "status": string(status)})
	if err != nil {
		return 0, platformmongo.WrapError("count identities", err)
	}
	return int(n), nil
}

func (d *identityDocument) toModel() (*models.Identity, error) {
	identityID, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("decode identity id %q: %w", d.ID, err)
	}
	personID, err := uuid.Parse(d.PersonID)
	if err != nil {
		return nil, fmt.Errorf("decode identity person id %q: %w", d.PersonID, err)
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("decode identity user id %q: %w", d.UserID, err)
	}
	ident := d.Identity
	ident.ID = id.IdentityID(identityID)
	ident.PersonID = id.PersonID(personID)
	ident.UserID = id.UserID(userID)
	return &ident, nil
}
