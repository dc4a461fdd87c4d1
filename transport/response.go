package transport

import (
	"encoding/json"
	"net/http"

	"github.com/divyaalluri1312/FriendFleet/utils/errors"
)

// ErrorResponse is the body returned on every failure path.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	resp := ErrorResponse{Message: "error internal"}

	if customErr, ok := err.(errors.CustomError); ok {
		status = customErr.ErrorHTTPCode()
		resp.Message = customErr.Error()
		resp.ErrorCode = customErr.ErrorCode()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
