package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every API route onto a fresh mux router.
func NewRouter(analysis *AnalysisHandler, transfer *TransferHandler, metricsEnabled bool) *mux.Router {
	router := mux.NewRouter()
	analysis.RegisterRoutes(router)
	transfer.RegisterRoutes(router)
	router.HandleFunc("/health", healthHandler).Methods("GET")
	if metricsEnabled {
		router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}
	return router
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
