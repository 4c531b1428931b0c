package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mkuchta/orbit/pkg/errors"
	"github.com/mkuchta/orbit/pkg/menu"
)

// Default database and collection names for the Mongo store.
const (
	DefaultDatabase   = "orbit"
	DefaultCollection = "plans"
)

// MongoStore persists plans in a MongoDB collection, keyed by plan ID
// (stored as _id via the bson tags on menu.Plan).
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB instance at uri
// (e.g., "mongodb://localhost:27017") and uses the default database and
// collection. The connection is verified with a ping.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(DefaultDatabase).Collection(DefaultCollection),
	}, nil
}

// Save upserts the plan by ID.
func (s *MongoStore) Save(ctx context.Context, p menu.Plan) error {
	if err := errors.ValidatePlanID(p.ID); err != nil {
		return err
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": p.ID},
		p,
		options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save plan %s", p.ID)
	}
	return nil
}

// Get retrieves a plan by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (menu.Plan, error) {
	if err := errors.ValidatePlanID(id); err != nil {
		return menu.Plan{}, err
	}
	var p menu.Plan
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return menu.Plan{}, errors.New(errors.ErrCodePlanNotFound, "no plan %q", id)
	}
	if err != nil {
		return menu.Plan{}, errors.Wrap(errors.ErrCodeInternal, err, "get plan %s", id)
	}
	return p, nil
}

// List returns all stored plans.
func (s *MongoStore) List(ctx context.Context) ([]menu.Plan, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list plans")
	}
	defer cur.Close(ctx)

	var plans []menu.Plan
	if err := cur.All(ctx, &plans); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode plans")
	}
	return plans, nil
}

// Delete removes a plan by ID. Missing plans are ignored.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidatePlanID(id); err != nil {
		return err
	}
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete plan %s", id)
	}
	return nil
}

// Close disconnects the Mongo client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
