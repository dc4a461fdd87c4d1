package ride

import (
	"context"
	"regexp"
	"time"

	"github.com/divyaalluri1312/FriendFleet/constant"
	"github.com/divyaalluri1312/FriendFleet/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Mongo struct {
	coll *mongo.Collection
}

type RideRepository interface {
	Create(ctx context.Context, req *model.RideEntity) (*model.RideEntity, error)
	GetExpanded(ctx context.Context, id primitive.ObjectID) (*model.ExpandedRide, error)
	Search(ctx context.Context, filter *model.RideSearchFilter) ([]model.ExpandedRide, error)
	ListByDriver(ctx context.Context, driver primitive.ObjectID) ([]model.ExpandedRide, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, driver primitive.ObjectID, from, to constant.RideStatus) (bool, error)
}

func NewRideRepository(db *mongo.Database) RideRepository {
	return &Mongo{coll: db.Collection("rides")}
}

func (s *Mongo) Create(ctx context.Context, data *model.RideEntity) (*model.RideEntity, error) {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	if data.Status == "" {
		data.Status = constant.RideStatusActive
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

// expandStages resolve the driver and vehicle references, the aggregation
// counterpart of a populate on both fields.
func expandStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "driver",
			"foreignField": "_id",
			"as":           "driver",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$driver", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "vehicles",
			"localField":   "vehicle",
			"foreignField": "_id",
			"as":           "vehicle",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$vehicle", "preserveNullAndEmptyArrays": true}}},
	}
}

func (s *Mongo) aggregateExpanded(ctx context.Context, match bson.M, sort bson.D) ([]model.ExpandedRide, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}
	pipeline = append(pipeline, expandStages()...)
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rides := make([]model.ExpandedRide, 0)
	if err := cursor.All(ctx, &rides); err != nil {
		return nil, err
	}
	return rides, nil
}

func (s *Mongo) GetExpanded(ctx context.Context, id primitive.ObjectID) (*model.ExpandedRide, error) {
	rides, err := s.aggregateExpanded(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		return nil, err
	}
	if len(rides) == 0 {
		return nil, nil
	}
	return &rides[0], nil
}

// BuildSearchMatch translates the filter into the aggregation $match
// document. From/to become case-insensitive substring regexes with
// metacharacters escaped; the date bounds are inclusive.
func BuildSearchMatch(filter *model.RideSearchFilter) bson.M {
	match := bson.M{
		"date":   bson.M{"$gte": filter.DateFrom, "$lte": filter.DateTo},
		"status": filter.Status,
	}
	if filter.From != "" {
		match["from"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.From), Options: "i"}
	}
	if filter.To != "" {
		match["to"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.To), Options: "i"}
	}
	return match
}

// Search returns matches unsorted; departure ordering is the application
// layer's concern.
func (s *Mongo) Search(ctx context.Context, filter *model.RideSearchFilter) ([]model.ExpandedRide, error) {
	return s.aggregateExpanded(ctx, BuildSearchMatch(filter), nil)
}

func (s *Mongo) ListByDriver(ctx context.Context, driver primitive.ObjectID) ([]model.ExpandedRide, error) {
	return s.aggregateExpanded(ctx, bson.M{"driver": driver}, bson.D{{Key: "createdAt", Value: -1}})
}

// UpdateStatus transitions a ride from one status to another. A zero driver
// id skips the ownership constraint, which the internal completion path
// uses. Returns false when no ride matched.
func (s *Mongo) UpdateStatus(ctx context.Context, id primitive.ObjectID, driver primitive.ObjectID, from, to constant.RideStatus) (bool, error) {
	query := bson.M{"_id": id, "status": from}
	if !driver.IsZero() {
		query["driver"] = driver
	}

	result, err := s.coll.UpdateOne(ctx, query, bson.M{"$set": bson.M{"status": to}})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
