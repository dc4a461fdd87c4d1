package vehicle

import (
	"context"
	"time"

	"github.com/divyaalluri1312/FriendFleet/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Mongo struct {
	coll *mongo.Collection
}

type VehicleRepository interface {
	Create(ctx context.Context, req *model.VehicleEntity) (*model.VehicleEntity, error)
	Get(ctx context.Context, filter *model.VehicleFilter) (*model.VehicleEntity, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.VehicleEntity, error)
}

func NewVehicleRepository(db *mongo.Database) VehicleRepository {
	return &Mongo{coll: db.Collection("vehicles")}
}

func (s *Mongo) Create(ctx context.Context, data *model.VehicleEntity) (*model.VehicleEntity, error) {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}

	result, err := s.coll.InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		data.ID = oid
	}
	return data, nil
}

// Get matches every set filter field. Combining ID with Owner is the
// ownership check used by ride publishing.
func (s *Mongo) Get(ctx context.Context, filter *model.VehicleFilter) (*model.VehicleEntity, error) {
	query := bson.M{}

	if !filter.ID.IsZero() {
		query["_id"] = filter.ID
	}
	if filter.Number != "" {
		query["number"] = filter.Number
	}
	if !filter.Owner.IsZero() {
		query["owner"] = filter.Owner
	}

	var entity model.VehicleEntity
	if err := s.coll.FindOne(ctx, query).Decode(&entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *Mongo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.VehicleEntity, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vehicles := make([]model.VehicleEntity, 0)
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}
