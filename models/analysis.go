package models

// AnalysisRequest names the endpoints of a lowest-latency path query.
// Both must be DNS names of nodes currently present in the tailnet.
type AnalysisRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// AnalysisResult is the outcome of one full tailnet analysis. When the
// destination is unreachable, Reachable is false and Path is empty;
// that is a normal result, not an error.
type AnalysisResult struct {
	Source         string   `json:"source"`
	Destination    string   `json:"destination"`
	Reachable      bool     `json:"reachable"`
	Path           []string `json:"path,omitempty"`
	TotalLatencyMs float64  `json:"total_latency_ms"`
	NodeCount      int      `json:"node_count"`
	ProbeCount     int      `json:"probe_count"`
	FailedProbes   int      `json:"failed_probes"`
}
