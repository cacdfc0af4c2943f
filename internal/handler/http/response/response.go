package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error shape every endpoint replies with.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON writes any payload with the given status code.
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Error: "Failed to encode response"})
	}
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

func ErrorWithDetails(w http.ResponseWriter, statusCode int, message, details string) {
	JSON(w, statusCode, ErrorBody{Error: message, Details: details})
}
