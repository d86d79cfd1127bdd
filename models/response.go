package models

// ApiResponse is the envelope returned by every API endpoint.
type ApiResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ApiError   `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
}

// ApiError carries a machine-readable code alongside the user-facing
// message.
type ApiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NodesResponse lists the currently discovered tailnet nodes.
type NodesResponse struct {
	Nodes []string `json:"nodes"`
	Count int      `json:"count"`
}
