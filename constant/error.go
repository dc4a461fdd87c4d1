package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrUserExists
	ErrInvalidPassword
	ErrUserNotFound
	ErrVehicleExists
	ErrVehicleNotOwned
	ErrRideNotFound
	ErrInvalidTime
	ErrNoFileUploaded
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "User not found",
	ErrInvalidRequest:  "All fields are required",
	ErrUnauthorize:     "Invalid token",
	ErrUserExists:      "User already exists",
	ErrInvalidPassword: "Invalid credentials",
	ErrUserNotFound:    "User not found",
	ErrVehicleExists:   "Vehicle already registered",
	ErrVehicleNotOwned: "Vehicle not found or not owned by user",
	ErrRideNotFound:    "Ride not found",
	ErrInvalidTime:     "Invalid time format",
	ErrNoFileUploaded:  "No file uploaded",
}

// ErrNotFound stays a 400: login reports an unknown phone as a bad request,
// while profile/vehicle/ride lookups use the dedicated 404 types.
var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusBadRequest,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrUserExists:      http.StatusBadRequest,
	ErrInvalidPassword: http.StatusBadRequest,
	ErrUserNotFound:    http.StatusNotFound,
	ErrVehicleExists:   http.StatusBadRequest,
	ErrVehicleNotOwned: http.StatusNotFound,
	ErrRideNotFound:    http.StatusNotFound,
	ErrInvalidTime:     http.StatusBadRequest,
	ErrNoFileUploaded:  http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrUserExists:      "0005",
	ErrInvalidPassword: "0006",
	ErrUserNotFound:    "0007",
	ErrVehicleExists:   "0008",
	ErrVehicleNotOwned: "0009",
	ErrRideNotFound:    "0010",
	ErrInvalidTime:     "0011",
	ErrNoFileUploaded:  "0012",
}
