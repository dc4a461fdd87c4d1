package main

import (
	"context"
	"net/http"

	rideapp "github.com/divyaalluri1312/FriendFleet/application/ride"
	userapp "github.com/divyaalluri1312/FriendFleet/application/user"
	vehicleapp "github.com/divyaalluri1312/FriendFleet/application/vehicle"
	"github.com/divyaalluri1312/FriendFleet/cmd/config"
	mongoclient "github.com/divyaalluri1312/FriendFleet/cmd/mongo"
	redisclient "github.com/divyaalluri1312/FriendFleet/cmd/redis"
	_ "github.com/divyaalluri1312/FriendFleet/docs"
	redisRepo "github.com/divyaalluri1312/FriendFleet/repository/redis"
	rideRepo "github.com/divyaalluri1312/FriendFleet/repository/ride"
	userRepo "github.com/divyaalluri1312/FriendFleet/repository/user"
	vehicleRepo "github.com/divyaalluri1312/FriendFleet/repository/vehicle"
	"github.com/divyaalluri1312/FriendFleet/thirdparty/rabbitmq"
	"github.com/divyaalluri1312/FriendFleet/transport"
	"github.com/divyaalluri1312/FriendFleet/utils/logger"
	"go.uber.org/zap"
)

// @title FRIENDFLEET API
// @version 1.0
// @description Ride-sharing API Documentation
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to MongoDB and ensure the unique indexes
	if err := mongoclient.New(cfg); err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoclient.Close()
	}()

	if err := mongoclient.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal("err ensure indexes", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	db := mongoclient.Get()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	VehicleRepo := vehicleRepo.NewVehicleRepository(db)
	RideRepo := rideRepo.NewRideRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// RabbitMQ drives the delayed ride-completion transition; the API stays
	// up without it
	var publisher *rabbitmq.Publisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq publisher unavailable", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Warn("rabbitmq consumer unavailable", zap.Error(err))
	} else {
		defer consumer.Close()
		if err := consumer.Start(consumerCtx); err != nil {
			logger.Warn("rabbitmq consumer start failed", zap.Error(err))
		}
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	VehicleApp := vehicleapp.NewVehicleApp(cfg, VehicleRepo)
	RideApp := rideapp.NewRideApp(cfg, RideRepo, VehicleRepo, publisher)

	httpTransport := transport.NewTransport(cfg, UserApp, VehicleApp, RideApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
