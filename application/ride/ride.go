package ride

import (
	"context"
	"sort"
	"time"

	"github.com/divyaalluri1312/FriendFleet/cmd/config"
	"github.com/divyaalluri1312/FriendFleet/constant"
	"github.com/divyaalluri1312/FriendFleet/model"
	riderepo "github.com/divyaalluri1312/FriendFleet/repository/ride"
	vehiclerepo "github.com/divyaalluri1312/FriendFleet/repository/vehicle"
	"github.com/divyaalluri1312/FriendFleet/thirdparty/rabbitmq"
	"github.com/divyaalluri1312/FriendFleet/utils/errors"
	"github.com/divyaalluri1312/FriendFleet/utils/logger"
	"github.com/divyaalluri1312/FriendFleet/utils/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type RideApp interface {
	Publish(ctx context.Context, userID string, req *model.PublishRideRequest) (*model.RideResponse, error)
	Search(ctx context.Context, req *model.SearchRidesRequest) (*model.RideListResponse, error)
	Published(ctx context.Context, userID string) (*model.RideListResponse, error)
	Cancel(ctx context.Context, userID string, rideID string) error
	Complete(ctx context.Context, rideID string) error
}

type rideAppImpl struct {
	config      *config.Config
	rideRepo    riderepo.RideRepository
	vehicleRepo vehiclerepo.VehicleRepository
	publisher   *rabbitmq.Publisher
}

func NewRideApp(config *config.Config, rideRepo riderepo.RideRepository, vehicleRepo vehiclerepo.VehicleRepository, publisher *rabbitmq.Publisher) RideApp {
	return &rideAppImpl{config: config, rideRepo: rideRepo, vehicleRepo: vehicleRepo, publisher: publisher}
}

func (s *rideAppImpl) Publish(ctx context.Context, userID string, req *model.PublishRideRequest) (*model.RideResponse, error) {
	driver, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if req.Time == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Time.Hour < 0 || req.Time.Minute < 0 ||
		(req.Time.Ampm != constant.AmpmAM && req.Time.Ampm != constant.AmpmPM) {
		return nil, errors.SetCustomError(constant.ErrInvalidTime)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// A malformed vehicle id cannot reference an owned vehicle, so it falls
	// into the same not-found path as a foreign one.
	vehicleID, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrVehicleNotOwned)
	}

	// Ownership check: a single query matching both id and owner
	vehicle, err := s.vehicleRepo.Get(ctx, &model.VehicleFilter{ID: vehicleID, Owner: driver})
	if err != nil {
		logger.Error("[PublishRide] err vehicleRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if vehicle == nil {
		return nil, errors.SetCustomError(constant.ErrVehicleNotOwned)
	}

	ride := &model.RideEntity{
		Driver:  driver,
		From:    req.From,
		To:      req.To,
		Date:    date,
		Time:    *req.Time,
		Seats:   req.Seats,
		Vehicle: vehicleID,
		Status:  constant.RideStatusActive,
	}

	ride, err = s.rideRepo.Create(ctx, ride)
	if err != nil {
		logger.Error("[PublishRide] err rideRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	metrics.RidesPublishedTotal.Inc()

	// Schedule the active-to-completed transition at departure; a publish
	// failure never fails the request
	if s.publisher != nil {
		msg := rabbitmq.RideCompletionMessage{
			RideID:   ride.ID.Hex(),
			DriverID: driver.Hex(),
			DepartAt: departureInstant(date, ride.Time),
		}
		if err := s.publisher.PublishRideCompletion(msg); err != nil {
			logger.Error("[PublishRide] publish ride completion", zap.String("error", err.Error()))
		}
	}

	expanded, err := s.rideRepo.GetExpanded(ctx, ride.ID)
	if err != nil || expanded == nil {
		logger.Error("[PublishRide] err rideRepo.GetExpanded", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RideResponse{Ride: expanded}, nil
}

func (s *rideAppImpl) Search(ctx context.Context, req *model.SearchRidesRequest) (*model.RideListResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	start, end := dayWindow(date)
	rides, err := s.rideRepo.Search(ctx, &model.RideSearchFilter{
		From:     req.From,
		To:       req.To,
		DateFrom: start,
		DateTo:   end,
		Status:   constant.RideStatusActive,
	})
	if err != nil {
		logger.Error("[SearchRides] err rideRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	sortByDeparture(rides)
	metrics.RideSearchesTotal.Inc()

	return &model.RideListResponse{Rides: rides}, nil
}

func (s *rideAppImpl) Published(ctx context.Context, userID string) (*model.RideListResponse, error) {
	driver, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	rides, err := s.rideRepo.ListByDriver(ctx, driver)
	if err != nil {
		logger.Error("[PublishedRides] err rideRepo.ListByDriver", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RideListResponse{Rides: rides}, nil
}

// Cancel transitions an active ride to cancelled; only the owning driver
// can do it.
func (s *rideAppImpl) Cancel(ctx context.Context, userID string, rideID string) error {
	driver, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	id, err := primitive.ObjectIDFromHex(rideID)
	if err != nil {
		return errors.SetCustomError(constant.ErrRideNotFound)
	}

	matched, err := s.rideRepo.UpdateStatus(ctx, id, driver, constant.RideStatusActive, constant.RideStatusCancelled)
	if err != nil {
		logger.Error("[CancelRide] err rideRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !matched {
		return errors.SetCustomError(constant.ErrRideNotFound)
	}
	return nil
}

// Complete transitions an active ride to completed. Driven by the
// ride-completion consumer at the ride's departure instant.
func (s *rideAppImpl) Complete(ctx context.Context, rideID string) error {
	id, err := primitive.ObjectIDFromHex(rideID)
	if err != nil {
		return errors.SetCustomError(constant.ErrRideNotFound)
	}

	matched, err := s.rideRepo.UpdateStatus(ctx, id, primitive.NilObjectID, constant.RideStatusActive, constant.RideStatusCompleted)
	if err != nil {
		logger.Error("[CompleteRide] err rideRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !matched {
		return errors.SetCustomError(constant.ErrRideNotFound)
	}
	return nil
}

// sortByDeparture orders rides by date, then clock hour, then minute, all
// ascending. The hour is compared as the raw 1-12 value with the meridiem
// ignored, so 12:30 AM sorts before 1:00 PM before 11:00 AM. Existing
// clients depend on this order; changing it is a behavior break.
func sortByDeparture(rides []model.ExpandedRide) {
	sort.SliceStable(rides, func(i, j int) bool {
		if !rides[i].Date.Equal(rides[j].Date) {
			return rides[i].Date.Before(rides[j].Date)
		}
		if rides[i].Time.Hour != rides[j].Time.Hour {
			return rides[i].Time.Hour < rides[j].Time.Hour
		}
		return rides[i].Time.Minute < rides[j].Time.Minute
	})
}

// dayWindow returns the inclusive bounds of the calendar day containing t,
// in server-local time.
func dayWindow(t time.Time) (time.Time, time.Time) {
	local := t.Local()
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	end := time.Date(y, m, d, 23, 59, 59, 999_000_000, time.Local)
	return start, end
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// departureInstant resolves the stored 12-hour clock into the absolute
// departure time on the ride's date.
func departureInstant(date time.Time, rt model.RideTime) time.Time {
	hour := rt.Hour % 12
	if rt.Ampm == constant.AmpmPM {
		hour += 12
	}
	local := date.Local()
	y, m, d := local.Date()
	return time.Date(y, m, d, hour, rt.Minute, 0, 0, time.Local)
}
