package httpserver

import (
	"time"

	"notice-cache/internal/models"
)

// CacheMeta tells the client how its data was obtained. Degraded is set on
// stale fallbacks so the client can show an out-of-date warning.
type CacheMeta struct {
	Outcome   models.Outcome `json:"outcome"`
	FetchedAt time.Time      `json:"fetched_at"`
	Degraded  bool           `json:"degraded,omitempty"`
}

// DataResponse wraps successful data lookups.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Cache   CacheMeta   `json:"cache"`
}

// ClearRequest selects what to clear: a whole namespace or one exact key.
// Exactly one field must be set.
type ClearRequest struct {
	Namespace string `json:"namespace,omitempty"`
	Key       string `json:"key,omitempty"`
}

// StatusResponse reports the outcome of admin operations and errors.
type StatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
