package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/michhsolis/Actividad-06-VPN/config"
	"github.com/michhsolis/Actividad-06-VPN/graph"
	"github.com/michhsolis/Actividad-06-VPN/metrics"
)

// latencyPattern matches the round-trip report of tailscale ping, e.g.
// "pong from host (100.64.0.7) via DERP(nyc) in 23.4ms".
var latencyPattern = regexp.MustCompile(`in (\d+\.?\d*)ms`)

// ProbeService measures pairwise latency with `tailscale ping`. It
// implements the measure capability consumed by graph.Build.
type ProbeService struct {
	binary  string
	timeout time.Duration
	runner  Runner
	logger  *slog.Logger
}

func NewProbeService(cfg config.TailscaleConfig, runner Runner, logger *slog.Logger) *ProbeService {
	return &ProbeService{
		binary:  cfg.Binary,
		timeout: cfg.ProbeTimeout,
		runner:  runner,
		logger:  logger,
	}
}

// Measure probes the latency to dst and returns it in milliseconds.
// Probes always originate from the local node: tailscale can only ping
// outward, so src is carried for logging only. Any failure means "no
// answer" and is absorbed by the graph builder as edge absence.
func (ps *ProbeService) Measure(ctx context.Context, src, dst graph.NodeID) (float64, error) {
	start := time.Now()
	stdout, _, err := ps.runner.Run(ctx, ps.binary, "ping", string(dst), fmt.Sprintf("--timeout=%s", ps.timeout))
	metrics.ProbeDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProbeTotal.WithLabelValues("error").Inc()
		ps.logger.Debug("probe failed", "src", src, "dst", dst, "error", err)
		return 0, fmt.Errorf("tailscale ping %s: %w", dst, err)
	}

	latency, err := parseLatency(string(stdout))
	if err != nil {
		metrics.ProbeTotal.WithLabelValues("no_answer").Inc()
		ps.logger.Debug("probe got no answer", "src", src, "dst", dst)
		return 0, err
	}

	metrics.ProbeTotal.WithLabelValues("ok").Inc()
	ps.logger.Debug("probe succeeded", "src", src, "dst", dst, "latency_ms", latency)
	return latency, nil
}

// parseLatency extracts the millisecond latency from ping output.
func parseLatency(out string) (float64, error) {
	match := latencyPattern.FindStringSubmatch(out)
	if match == nil {
		return 0, fmt.Errorf("no latency in ping output")
	}
	return strconv.ParseFloat(match[1], 64)
}
