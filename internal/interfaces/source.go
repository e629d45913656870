package interfaces

import (
	"context"

	"notice-cache/internal/models"
)

//go:generate mockgen -package=mock -source=source.go -destination=mock/source.go

// NoticeSource is the upstream noticeboard API. Implementations must report
// application-level rejections (success=false envelopes) and transport
// failures alike as *models.RemoteFetchError.
type NoticeSource interface {
	Notices(ctx context.Context) ([]models.Notice, error)
	NoticeDetail(ctx context.Context, id int64) (models.NoticeDetail, error)
	Attachments(ctx context.Context, id int64) ([]models.Attachment, error)
	LeaveSummary(ctx context.Context, userID string) (models.LeaveSummary, error)
}
