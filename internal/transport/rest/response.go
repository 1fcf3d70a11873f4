package rest

import (
	"encoding/json"
	"net/http"
)

// failedLabel is the fixed error label of every model-facing failure.
const failedLabel = "Failed to process request"

type failureResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFailure sends the 500 envelope with the cause as details.
func writeFailure(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, failureResponse{
		Error:   failedLabel,
		Details: err.Error(),
	})
}
