package models

import "encoding/json"

// Envelope is the response wrapper used by the noticeboard REST API.
// Every endpoint returns `{"success": bool, "message": string, "data": ...}`;
// success=false is treated as a fetch failure regardless of HTTP status.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
