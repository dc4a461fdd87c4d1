package vehicle

import (
	"context"

	"github.com/divyaalluri1312/FriendFleet/cmd/config"
	"github.com/divyaalluri1312/FriendFleet/constant"
	"github.com/divyaalluri1312/FriendFleet/model"
	vehiclerepo "github.com/divyaalluri1312/FriendFleet/repository/vehicle"
	"github.com/divyaalluri1312/FriendFleet/utils/errors"
	"github.com/divyaalluri1312/FriendFleet/utils/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type VehicleApp interface {
	Register(ctx context.Context, userID string, req *model.RegisterVehicleRequest) (*model.VehicleResponse, error)
	List(ctx context.Context, userID string) (*model.VehicleListResponse, error)
}

type vehicleAppImpl struct {
	config      *config.Config
	vehicleRepo vehiclerepo.VehicleRepository
}

func NewVehicleApp(config *config.Config, vehicleRepo vehiclerepo.VehicleRepository) VehicleApp {
	return &vehicleAppImpl{config: config, vehicleRepo: vehicleRepo}
}

// Register associates a vehicle with the caller. Plate numbers are unique
// across all owners.
func (s *vehicleAppImpl) Register(ctx context.Context, userID string, req *model.RegisterVehicleRequest) (*model.VehicleResponse, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	existing, err := s.vehicleRepo.Get(ctx, &model.VehicleFilter{Number: req.Number})
	if err != nil {
		logger.Error("[RegisterVehicle] err vehicleRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrVehicleExists)
	}

	vehicle := &model.VehicleEntity{
		Number: req.Number,
		Type:   req.Type,
		Model:  req.Model,
		Owner:  owner,
	}

	vehicle, err = s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.SetCustomError(constant.ErrVehicleExists)
		}
		logger.Error("[RegisterVehicle] err vehicleRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.VehicleResponse{Vehicle: vehicle}, nil
}

func (s *vehicleAppImpl) List(ctx context.Context, userID string) (*model.VehicleListResponse, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	vehicles, err := s.vehicleRepo.ListByOwner(ctx, owner)
	if err != nil {
		logger.Error("[ListVehicles] err vehicleRepo.ListByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.VehicleListResponse{Vehicles: vehicles}, nil
}
