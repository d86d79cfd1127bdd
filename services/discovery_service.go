// Package services holds the collaborators around the graph core:
// tailnet discovery, latency probing, analysis orchestration and file
// transfer.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/michhsolis/Actividad-06-VPN/config"
	"github.com/michhsolis/Actividad-06-VPN/graph"
)

// tailscaleStatus mirrors the parts of `tailscale status --json` that
// discovery reads.
type tailscaleStatus struct {
	Self *tailscalePeer           `json:"Self"`
	Peer map[string]tailscalePeer `json:"Peer"`
}

type tailscalePeer struct {
	DNSName string `json:"DNSName"`
}

// DiscoveryService enumerates the nodes of the tailnet. A discovery
// failure is fatal to the analysis request that triggered it.
type DiscoveryService struct {
	binary      string
	includeSelf bool
	runner      Runner
	logger      *slog.Logger
}

func NewDiscoveryService(cfg config.TailscaleConfig, runner Runner, logger *slog.Logger) *DiscoveryService {
	return &DiscoveryService{
		binary:      cfg.Binary,
		includeSelf: cfg.IncludeSelf,
		runner:      runner,
		logger:      logger,
	}
}

// Nodes returns the DNS names of the current tailnet peers in sorted
// order, plus the local node when configured.
func (ds *DiscoveryService) Nodes(ctx context.Context) ([]graph.NodeID, error) {
	stdout, stderr, err := ds.runner.Run(ctx, ds.binary, "status", "--json")
	if err != nil {
		return nil, fmt.Errorf("tailscale status: %w: %s", err, strings.TrimSpace(string(stderr)))
	}

	var status tailscaleStatus
	if err := json.Unmarshal(stdout, &status); err != nil {
		return nil, fmt.Errorf("parsing tailscale status: %w", err)
	}

	var nodes []graph.NodeID
	for _, peer := range status.Peer {
		if name := normalizeDNSName(peer.DNSName); name != "" {
			nodes = append(nodes, graph.NodeID(name))
		}
	}
	if ds.includeSelf && status.Self != nil {
		if name := normalizeDNSName(status.Self.DNSName); name != "" {
			nodes = append(nodes, graph.NodeID(name))
		}
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	ds.logger.Debug("discovered tailnet nodes", "count", len(nodes))
	return nodes, nil
}

// normalizeDNSName strips the trailing dot tailscale appends to fully
// qualified names so user input matches discovered identifiers.
func normalizeDNSName(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), ".")
}
