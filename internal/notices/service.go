package notices

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"notice-cache/internal/cache"
	"notice-cache/internal/config"
	"notice-cache/internal/interfaces"
	"notice-cache/internal/models"
)

// Cache namespaces. None may be a prefix of another, except that "notice"
// deliberately prefixes all notice namespaces so a reset can clear them in
// one sweep.
const (
	NamespaceNotices     = "notice"
	NamespaceList        = "notice:list"
	NamespaceDetail      = "notice:detail"
	NamespaceAttachments = "notice:att"
	NamespaceLeave       = "leave"
)

// Service mirrors the noticeboard and leave endpoints into the local store
// with read-through semantics. Each flow has its own namespace and TTL;
// a stale-fallback outcome tells the consumer to surface a degraded-data
// warning.
type Service struct {
	store  interfaces.Store
	source interfaces.NoticeSource
	logger *zap.Logger

	list        *cache.Cache[[]models.Notice]
	detail      *cache.Cache[models.NoticeDetail]
	attachments *cache.Cache[[]models.Attachment]
	leave       *cache.Cache[models.LeaveSummary]
}

// NewService wires the per-flow caches over a shared store.
func NewService(store interfaces.Store, source interfaces.NoticeSource, ttl config.TTLConfig, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		source: source,
		logger: logger,
		list: cache.New[[]models.Notice](store,
			cache.Config{Namespace: NamespaceList, TTL: ttl.NoticeList.Std()}, logger),
		detail: cache.New[models.NoticeDetail](store,
			cache.Config{Namespace: NamespaceDetail, TTL: ttl.NoticeDetail.Std()}, logger),
		attachments: cache.New[[]models.Attachment](store,
			cache.Config{Namespace: NamespaceAttachments, TTL: ttl.Attachments.Std()}, logger),
		leave: cache.New[models.LeaveSummary](store,
			cache.Config{Namespace: NamespaceLeave, TTL: ttl.Leave.Std()}, logger),
	}
}

// List returns the notice list, from cache when fresh.
func (s *Service) List(ctx context.Context, forceRefresh bool) (cache.Result[[]models.Notice], error) {
	return s.list.Fetch(ctx, "", s.source.Notices, forceRefresh)
}

// Detail returns one notice's full body, from cache when fresh.
func (s *Service) Detail(ctx context.Context, id int64, forceRefresh bool) (cache.Result[models.NoticeDetail], error) {
	return s.detail.Fetch(ctx, strconv.FormatInt(id, 10), func(ctx context.Context) (models.NoticeDetail, error) {
		return s.source.NoticeDetail(ctx, id)
	}, forceRefresh)
}

// Attachments returns one notice's attachment metadata, from cache when
// fresh.
func (s *Service) Attachments(ctx context.Context, id int64, forceRefresh bool) (cache.Result[[]models.Attachment], error) {
	return s.attachments.Fetch(ctx, strconv.FormatInt(id, 10), func(ctx context.Context) ([]models.Attachment, error) {
		return s.source.Attachments(ctx, id)
	}, forceRefresh)
}

// Leave returns one user's leave summary, from cache when fresh.
func (s *Service) Leave(ctx context.Context, userID string, forceRefresh bool) (cache.Result[models.LeaveSummary], error) {
	return s.leave.Fetch(ctx, userID, func(ctx context.Context) (models.LeaveSummary, error) {
		return s.source.LeaveSummary(ctx, userID)
	}, forceRefresh)
}

// ClearNamespace removes every cached entry under prefix.
func (s *Service) ClearNamespace(ctx context.Context, prefix string) error {
	return cache.ClearNamespace(ctx, s.store, prefix)
}

// ClearKey removes one cached entry.
func (s *Service) ClearKey(ctx context.Context, key string) error {
	if err := s.store.Remove(ctx, key); err != nil {
		return &models.StorageError{Op: "remove", Key: key, Err: err}
	}
	return nil
}

// Reset clears all noticeboard and leave data, for logout flows.
func (s *Service) Reset(ctx context.Context) error {
	if err := cache.ClearNamespace(ctx, s.store, NamespaceNotices); err != nil {
		return err
	}
	return cache.ClearNamespace(ctx, s.store, NamespaceLeave)
}
