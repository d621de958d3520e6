package models

// AppInfo describes the running service.
type AppInfo struct {
	Version         string `json:"version"`
	BuildDate       string `json:"build_date,omitempty"`
	BuildCommit     string `json:"build_commit,omitempty"`
	StorageDriver   string `json:"storage_driver"`
	UpstreamEnabled bool   `json:"upstream_enabled"`
}
