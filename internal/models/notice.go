package models

import "time"

// Notice is a single noticeboard entry as returned by the list endpoint.
type Notice struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Important   bool      `json:"important,omitempty"`
}

// NoticeDetail is the full body of a notice as returned by the detail
// endpoint.
type NoticeDetail struct {
	Notice
	Body            string `json:"body"`
	Author          string `json:"author,omitempty"`
	AttachmentCount int    `json:"attachment_count,omitempty"`
}

// Attachment describes a downloadable file attached to a notice. Rendering
// (PDF/image display) is the client's concern; this service only caches the
// metadata.
type Attachment struct {
	ID       int64  `json:"id"`
	NoticeID int64  `json:"notice_id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// LeaveSummary mirrors the per-user leave balance payload cached for the
// leave screen.
type LeaveSummary struct {
	UserID    string    `json:"user_id"`
	Total     float64   `json:"total"`
	Used      float64   `json:"used"`
	Remaining float64   `json:"remaining"`
	AsOf      time.Time `json:"as_of"`
}
