package user

import (
	"context"
	"time"

	"github.com/divyaalluri1312/FriendFleet/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	coll *mongo.Collection
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, id primitive.ObjectID, update *model.UserUpdate) (*model.UserEntity, error)
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection("users")}
}

func (s *Mongo) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
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

func (s *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := bson.M{}

	if !filter.ID.IsZero() {
		query["_id"] = filter.ID
	}
	if filter.Phone != "" {
		query["phone"] = filter.Phone
	}

	var entity model.UserEntity
	if err := s.coll.FindOne(ctx, query).Decode(&entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Update applies the non-nil fields of update and returns the updated
// document, or nil when no user matches.
func (s *Mongo) Update(ctx context.Context, id primitive.ObjectID, update *model.UserUpdate) (*model.UserEntity, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entity model.UserEntity
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&entity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
