package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/michhsolis/Actividad-06-VPN/models"
)

// Transferer copies a local file to a remote scp target.
type Transferer interface {
	Transfer(ctx context.Context, req models.TransferRequest) (models.TransferResult, error)
}

type TransferHandler struct {
	transfer Transferer
}

func NewTransferHandler(transfer Transferer) *TransferHandler {
	return &TransferHandler{transfer: transfer}
}

func (h *TransferHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/transfer", h.Transfer).Methods("POST")
}

func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body", "")
		return
	}
	if req.LocalPath == "" || req.Target == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "local_path and target are required", "")
		return
	}

	result, err := h.transfer.Transfer(r.Context(), req)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, "transfer_failed", "could not transfer the file", err.Error())
		return
	}

	writeData(w, http.StatusOK, result)
}
