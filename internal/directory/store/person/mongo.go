package person

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	platformmongo "askthem/internal/platform/mongo"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

// personDocument stores the person inline with a string _id.
type personDocument struct {
	ID            string `bson:"_id"`
	models.Person `bson:",inline"`
}

var sortByChamberAndName = bson.D{{Key: "chamber", Value: 1}, {Key: "last_name", Value: 1}, {Key: "_id", Value: 1}}

// Mongo is a MongoDB-backed PersonStore.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{coll: db.Collection(platformmongo.PeopleCollection)}
}

func (s *Mongo) Save(ctx context.Context, p *models.Person) error {
	doc := personDocument{ID: p.ID.String(), Person: *p}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return platformmongo.WrapError("save person", err)
	}
	return nil
}

func (s *Mongo) FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	var doc personDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": personID.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, platformmongo.WrapError("find person", err)
	}
	return doc.toModel()
}

func (s *Mongo) Find(ctx context.Context, filter ports.PersonFilter) ([]*models.Person, error) {
	return s.find(ctx, filterDocument(filter))
}

// SearchByName mirrors the exact-or-case-insensitive-substring match on
// full, first and last name. The fragment is quoted so it never acts as a
// pattern.
func (s *Mongo) SearchByName(ctx context.Context, fragment string) ([]*models.Person, error) {
	if fragment == "" {
		return []*models.Person{}, nil
	}
	pattern := bson.M{"$regex": regexp.QuoteMeta(fragment), "$options": "i"}
	return s.find(ctx, bson.M{"$or": bson.A{
		bson.M{"full_name": fragment},
		bson.M{"first_name": fragment},
		bson.M{"last_name": fragment},
		bson.M{"full_name": pattern},
		bson.M{"first_name": pattern},
		bson.M{"last_name": pattern},
	}})
}

func (s *Mongo) CountByJurisdiction(ctx context.Context, key id.JurisdictionKey) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"jurisdiction_id": string(key)})
	if err != nil {
		return 0, platformmongo.WrapError("count people", err)
	}
	return int(n), nil
}

func (s *Mongo) DistinctSubtypes(ctx context.Context) ([]models.SubtypeTag, error) {
	raw, err := s.coll.Distinct(ctx, "type", bson.M{})
	if err != nil {
		return nil, platformmongo.WrapError("distinct types", err)
	}
	seen := make(map[models.SubtypeTag]struct{}, len(raw))
	tags := make([]models.SubtypeTag, 0, len(raw))
	for _, v := range raw {
		str, _ := v.(string)
		tag := models.NormalizeSubtype(str)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	// Documents without a type field are Person too.
	if _, ok := seen[models.SubtypePerson]; !ok {
		n, err := s.coll.CountDocuments(ctx, bson.M{"type": bson.M{"$exists": false}}, options.Count().SetLimit(1))
		if err != nil {
			return nil, platformmongo.WrapError("count untyped people", err)
		}
		if n > 0 {
			tags = append(tags, models.SubtypePerson)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

func (s *Mongo) FindFeatured(ctx context.Context) ([]*models.Person, error) {
	return s.find(ctx, bson.M{"featured": true})
}

func (s *Mongo) SetFeatured(ctx context.Context, personID id.PersonID, featured bool) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": personID.String()}, bson.M{"$set": bson.M{"featured": featured}})
	if err != nil {
		return platformmongo.WrapError("set featured", err)
	}
	if res.MatchedCount == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Mongo) DemoteFeaturedExcept(ctx context.Context, keep id.PersonID) (int, error) {
	res, err := s.coll.UpdateMany(ctx,
		bson.M{"featured": true, "_id": bson.M{"$ne": keep.String()}},
		bson.M{"$set": bson.M{"featured": false}},
	)
	if err != nil {
		return 0, platformmongo.WrapError("demote featured", err)
	}
	return int(res.ModifiedCount), nil
}

func (s *Mongo) find(ctx context.Context, filter bson.M) ([]*models.Person, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(sortByChamberAndName))
	if err != nil {
		return nil, platformmongo.WrapError("find people", err)
	}
	var docs []personDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, platformmongo.WrapError("decode people", err)
	}
	out := make([]*models.Person, 0, len(docs))
	for i := range docs {
		p, err := docs[i].toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func filterDocument(f ports.PersonFilter) bson.M {
	and := bson.A{}
	if f.ActiveOnly {
		and = append(and, bson.M{"active": true})
	}
	if f.Jurisdiction != "" {
		and = append(and, bson.M{"jurisdiction_id": f.Jurisdiction})
	}
	if f.Chamber != "" {
		and = append(and, bson.M{"$or": bson.A{bson.M{"chamber": f.Chamber}, bson.M{"roles.chamber": f.Chamber}}})
	}
	if f.District != "" {
		and = append(and, bson.M{"$or": bson.A{bson.M{"district": f.District}, bson.M{"roles.district": f.District}}})
	}
	if len(f.Types) > 0 {
		types := bson.A{}
		for _, t := range f.Types {
			tag := models.NormalizeSubtype(string(t))
			types = append(types, string(tag))
			if tag == models.SubtypePerson {
				types = append(types, "", nil)
			}
		}
		and = append(and, bson.M{"type": bson.M{"$in": types}})
	}
	if len(f.Slugs) > 0 {
		and = append(and, bson.M{"slug": bson.M{"$in": f.Slugs}})
	}
	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}

func (d *personDocument) toModel() (*models.Person, error) {
	u, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("decode person id %q: %w", d.ID, err)
	}
	p := d.Person
	p.ID = id.PersonID(u)
	return &p, nil
}
