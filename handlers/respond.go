package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/michhsolis/Actividad-06-VPN/models"
)

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, models.ApiResponse{
		Success:   true,
		Data:      data,
		RequestID: uuid.NewString(),
	})
}

func writeError(w http.ResponseWriter, status int, code, message, details string) {
	writeJSON(w, status, models.ApiResponse{
		Success:   false,
		Error:     &models.ApiError{Code: code, Message: message, Details: details},
		RequestID: uuid.NewString(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
