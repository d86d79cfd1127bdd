package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/michhsolis/Actividad-06-VPN/graph"
	"github.com/michhsolis/Actividad-06-VPN/metrics"
	"github.com/michhsolis/Actividad-06-VPN/models"
)

// ErrUnknownNode reports a source or destination that is not part of
// the discovered tailnet. It is a user-input error, not a fault.
var ErrUnknownNode = errors.New("node not found in tailnet")

// Discoverer enumerates the current tailnet nodes.
type Discoverer interface {
	Nodes(ctx context.Context) ([]graph.NodeID, error)
}

// Prober measures the one-way latency between two nodes.
type Prober interface {
	Measure(ctx context.Context, src, dst graph.NodeID) (float64, error)
}

// AnalysisService runs a full tailnet analysis: discover the nodes,
// probe every ordered pair, then compute the lowest-latency path.
type AnalysisService struct {
	discovery Discoverer
	prober    Prober
	logger    *slog.Logger
}

func NewAnalysisService(discovery Discoverer, prober Prober, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		discovery: discovery,
		prober:    prober,
		logger:    logger,
	}
}

// Analyze computes the lowest-latency path between the requested
// endpoints. An unreachable destination is reported in the result, not
// as an error; only discovery failures and unknown endpoints propagate.
func (as *AnalysisService) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	start := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	nodes, err := as.discovery.Nodes(ctx)
	if err != nil {
		metrics.AnalysisTotal.WithLabelValues("discovery_error").Inc()
		return models.AnalysisResult{}, fmt.Errorf("discovering tailnet nodes: %w", err)
	}

	source := graph.NodeID(req.Source)
	destination := graph.NodeID(req.Destination)
	if err := validateEndpoints(nodes, source, destination); err != nil {
		metrics.AnalysisTotal.WithLabelValues("unknown_node").Inc()
		return models.AnalysisResult{}, err
	}

	as.logger.Info("probing tailnet", "nodes", len(nodes), "pairs", len(nodes)*(len(nodes)-1))

	probes, failed := 0, 0
	g := graph.Build(ctx, nodes, func(ctx context.Context, src, dst graph.NodeID) (float64, error) {
		w, err := as.prober.Measure(ctx, src, dst)
		probes++
		if err != nil {
			failed++
		}
		return w, err
	})

	dist, prev, err := graph.ShortestPaths(g, source)
	if err != nil {
		// Source membership was validated above, so this is a defect.
		metrics.AnalysisTotal.WithLabelValues("internal_error").Inc()
		return models.AnalysisResult{}, err
	}

	result := models.AnalysisResult{
		Source:       req.Source,
		Destination:  req.Destination,
		NodeCount:    len(nodes),
		ProbeCount:   probes,
		FailedProbes: failed,
	}

	total, reachable := dist.Dist(destination)
	if !reachable {
		metrics.AnalysisTotal.WithLabelValues("unreachable").Inc()
		as.logger.Info("no path available", "source", req.Source, "destination", req.Destination)
		return result, nil
	}

	path, err := graph.ReconstructPath(prev, destination)
	if err != nil {
		metrics.AnalysisTotal.WithLabelValues("internal_error").Inc()
		return models.AnalysisResult{}, fmt.Errorf("reconstructing path: %w", err)
	}

	result.Reachable = true
	result.TotalLatencyMs = total
	result.Path = make([]string, len(path))
	for i, n := range path {
		result.Path[i] = string(n)
	}

	metrics.AnalysisTotal.WithLabelValues("ok").Inc()
	as.logger.Info("analysis complete",
		"source", req.Source,
		"destination", req.Destination,
		"latency_ms", total,
		"hops", len(path)-1,
		"failed_probes", failed)
	return result, nil
}

func validateEndpoints(nodes []graph.NodeID, source, destination graph.NodeID) error {
	if !containsNode(nodes, source) {
		return fmt.Errorf("source %q: %w", source, ErrUnknownNode)
	}
	if !containsNode(nodes, destination) {
		return fmt.Errorf("destination %q: %w", destination, ErrUnknownNode)
	}
	return nil
}

func containsNode(nodes []graph.NodeID, target graph.NodeID) bool {
	for _, n := range nodes {
		if n == target {
			return true
		}
	}
	return false
}
