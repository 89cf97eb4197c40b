package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/muurk/consultacep/internal/logging"
)

// Error messages returned in ErrorResponse
const (
	MsgInvalidZipcode = "invalid zipcode"
	MsgNotFound       = "can not find zipcode"
	MsgLookupFailed   = "lookup failed"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}

// WriteJSON writes data as a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error("Error encoding JSON", zap.Error(err))
	}
}

// WriteError writes an ErrorResponse with the given status code
func WriteError(w http.ResponseWriter, msg string, code int) {
	WriteJSON(w, ErrorResponse{Message: msg}, code)
}
