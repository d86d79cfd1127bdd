package models

// TransferRequest asks for a local file to be copied to a remote scp
// target of the form user@host:/path.
type TransferRequest struct {
	LocalPath string `json:"local_path"`
	Target    string `json:"target"`
}

// TransferResult reports a completed transfer.
type TransferResult struct {
	LocalPath string `json:"local_path"`
	Target    string `json:"target"`
}
