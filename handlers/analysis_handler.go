// Package handlers exposes the analysis and transfer services over
// HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/michhsolis/Actividad-06-VPN/graph"
	"github.com/michhsolis/Actividad-06-VPN/models"
	"github.com/michhsolis/Actividad-06-VPN/services"
)

// Analyzer runs a full tailnet analysis for one request.
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
}

type AnalysisHandler struct {
	analyzer  Analyzer
	discovery services.Discoverer
}

func NewAnalysisHandler(analyzer Analyzer, discovery services.Discoverer) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:  analyzer,
		discovery: discovery,
	}
}

func (h *AnalysisHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/analysis", h.Analyze).Methods("POST")
	router.HandleFunc("/api/nodes", h.ListNodes).Methods("GET")
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body", "")
		return
	}
	if req.Source == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "source and destination are required", "")
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownNode) {
			writeError(w, http.StatusUnprocessableEntity, "unknown_node", "node not found in tailnet", err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, "analysis_failed", "could not analyze the tailnet", err.Error())
		return
	}

	writeData(w, http.StatusOK, result)
}

func (h *AnalysisHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.discovery.Nodes(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "discovery_failed", "could not enumerate tailnet nodes", err.Error())
		return
	}

	writeData(w, http.StatusOK, models.NodesResponse{
		Nodes: nodeNames(nodes),
		Count: len(nodes),
	})
}

func nodeNames(nodes []graph.NodeID) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = string(n)
	}
	return out
}
