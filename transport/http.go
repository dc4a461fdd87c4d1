package transport

import (
	"encoding/json"
	"net/http"

	rideapp "github.com/divyaalluri1312/FriendFleet/application/ride"
	userapp "github.com/divyaalluri1312/FriendFleet/application/user"
	vehicleapp "github.com/divyaalluri1312/FriendFleet/application/vehicle"
	"github.com/divyaalluri1312/FriendFleet/cmd/config"
	"github.com/divyaalluri1312/FriendFleet/constant"
	"github.com/divyaalluri1312/FriendFleet/model"
	utilsContext "github.com/divyaalluri1312/FriendFleet/utils/context"
	"github.com/divyaalluri1312/FriendFleet/utils/errors"
	validatorx "github.com/divyaalluri1312/FriendFleet/utils/validator"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	VehicleApp vehicleapp.VehicleApp
	RideApp    rideapp.RideApp
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, VehicleApp vehicleapp.VehicleApp, RideApp rideapp.RideApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		VehicleApp: VehicleApp,
		RideApp:    RideApp,
	}

	// Swagger UI and operational endpoints
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Uploaded profile images are served straight from disk
	mux.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Upload.Dir))))

	// Public routes
	mux.HandleFunc("/api/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/api/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/api/rides/search", rh.SearchRides).Methods(http.MethodGet)

	// Protected routes
	mux.HandleFunc("/api/user/profile", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/api/user/profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/api/user/upload-image", rh.UploadImage).Methods(http.MethodPost)
	mux.HandleFunc("/api/vehicles", rh.RegisterVehicle).Methods(http.MethodPost)
	mux.HandleFunc("/api/vehicles", rh.ListVehicles).Methods(http.MethodGet)
	mux.HandleFunc("/api/rides", rh.PublishRide).Methods(http.MethodPost)
	mux.HandleFunc("/api/rides/published", rh.PublishedRides).Methods(http.MethodGet)
	mux.HandleFunc("/api/rides/{id}/cancel", rh.CancelRide).Methods(http.MethodPost)

	// Internal route used by the ride-completion consumer
	mux.Handle("/internal/v1/rides/{id}/complete",
		InternalMiddleware(cfg.Internal.APIKey)(http.HandlerFunc(rh.CompleteRide))).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(MetricsMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user with phone as the unique identity
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with phone and password and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProfile handler
// @Summary Get profile
// @Description Fetch the authenticated user's profile
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/user/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update profile
// @Description Update profile fields; absent fields keep their values
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/user/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateProfile(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UploadImage handler
// @Summary Upload profile image
// @Description Upload a profile image as multipart field "profileImage"
// @Tags User
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UploadImageResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/user/upload-image [post]
func (s *RestHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrNoFileUploaded))
		return
	}

	file, header, err := r.FormFile("profileImage")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrNoFileUploaded))
		return
	}
	defer file.Close()

	res, err := s.UserApp.SaveProfileImage(ctx, userID, header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RegisterVehicle handler
// @Summary Register vehicle
// @Description Register a vehicle owned by the caller; plate numbers are globally unique
// @Tags Vehicle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterVehicleRequest true "Vehicle Request"
// @Success 200 {object} model.VehicleResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/vehicles [post]
func (s *RestHandler) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.RegisterVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VehicleApp.Register(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListVehicles handler
// @Summary List vehicles
// @Description List all vehicles owned by the caller
// @Tags Vehicle
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.VehicleListResponse
// @Router /api/vehicles [get]
func (s *RestHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.VehicleApp.List(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PublishRide handler
// @Summary Publish ride
// @Description Publish a ride offer using one of the caller's vehicles
// @Tags Ride
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PublishRideRequest true "Ride Request"
// @Success 200 {object} model.RideResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/rides [post]
func (s *RestHandler) PublishRide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.PublishRideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RideApp.Publish(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchRides handler
// @Summary Search rides
// @Description Search active rides by route substring and calendar day
// @Tags Ride
// @Produce json
// @Param from query string false "Origin substring"
// @Param to query string false "Destination substring"
// @Param date query string true "Travel date"
// @Success 200 {object} model.RideListResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/rides/search [get]
func (s *RestHandler) SearchRides(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	req := model.SearchRidesRequest{
		From: q.Get("from"),
		To:   q.Get("to"),
		Date: q.Get("date"),
		// TODO: gender preference is accepted here but not yet applied as a
		// filter; needs a product decision on matching semantics
		Gender: q.Get("gender"),
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RideApp.Search(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PublishedRides handler
// @Summary Published rides
// @Description List the caller's published rides, newest first
// @Tags Ride
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.RideListResponse
// @Router /api/rides/published [get]
func (s *RestHandler) PublishedRides(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.RideApp.Published(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelRide handler
// @Summary Cancel ride
// @Description Cancel one of the caller's active rides
// @Tags Ride
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ride ID"
// @Success 200 {object} transport.StatusResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/rides/{id}/cancel [post]
func (s *RestHandler) CancelRide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	rideID := mux.Vars(r)["id"]
	if err := s.RideApp.Cancel(ctx, userID, rideID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, StatusResponse{Status: string(constant.RideStatusCancelled)})
}

// CompleteRide marks a ride completed once its departure time has passed.
// Reachable only with the internal API key.
func (s *RestHandler) CompleteRide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rideID := mux.Vars(r)["id"]
	if err := s.RideApp.Complete(ctx, rideID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, StatusResponse{Status: string(constant.RideStatusCompleted)})
}

// StatusResponse reports the resulting status of a ride transition.
type StatusResponse struct {
	Status string `json:"status"`
}
