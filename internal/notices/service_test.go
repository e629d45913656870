package notices

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"notice-cache/internal/config"
	"notice-cache/internal/interfaces/mock"
	"notice-cache/internal/models"
	"notice-cache/internal/store/memory"
)

func testTTLConfig() config.TTLConfig {
	return config.TTLConfig{
		Default:      config.Duration(time.Hour),
		NoticeList:   config.Duration(time.Hour),
		NoticeDetail: config.Duration(time.Hour),
		Attachments:  config.Duration(time.Hour),
		Leave:        config.Duration(time.Hour),
	}
}

func fakeNotices(n int) []models.Notice {
	gofakeit.Seed(11)
	notices := make([]models.Notice, n)
	for i := range notices {
		notices[i] = models.Notice{
			ID:          int64(i + 1),
			Title:       gofakeit.Sentence(4),
			Category:    gofakeit.RandomString([]string{"general", "hr", "it"}),
			PublishedAt: gofakeit.Date(),
		}
	}
	return notices
}

func TestService_List_CachesUpstreamResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockNoticeSource(ctrl)
	service := NewService(memory.New(), source, testTTLConfig(), zap.NewNop())

	expected := fakeNotices(3)
	source.EXPECT().Notices(gomock.Any()).Return(expected, nil).Times(1)

	ctx := context.Background()

	// First lookup goes upstream
	result, err := service.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFresh, result.Outcome)
	assert.Equal(t, expected, result.Value)

	// Second lookup is served from cache; the mock enforces one call
	result, err = service.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCached, result.Outcome)
	assert.Equal(t, expected, result.Value)
}

func TestService_List_ForceRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockNoticeSource(ctrl)
	service := NewService(memory.New(), source, testTTLConfig(), zap.NewNop())

	source.EXPECT().Notices(gomock.Any()).Return(fakeNotices(2), nil).Times(2)

	ctx := context.Background()
	_, err := service.List(ctx, false)
	require.NoError(t, err)

	result, err := service.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFresh, result.Outcome)
}

func TestService_Detail_KeyedByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockNoticeSource(ctrl)
	service := NewService(memory.New(), source, testTTLConfig(), zap.NewNop())

	first := models.NoticeDetail{Notice: models.Notice{ID: 1, Title: "One"}, Body: "body one"}
	second := models.NoticeDetail{Notice: models.Notice{ID: 2, Title: "Two"}, Body: "body two"}
	source.EXPECT().NoticeDetail(gomock.Any(), int64(1)).Return(first, nil).Times(1)
	source.EXPECT().NoticeDetail(gomock.Any(), int64(2)).Return(second, nil).Times(1)

	ctx := context.Background()

	result, err := service.Detail(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, first, result.Value)

	result, err = service.Detail(ctx, 2, false)
	require.NoError(t, err)
	assert.Equal(t, second, result.Value)

	// Both ids now cached independently
	result, err = service.Detail(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCached, result.Outcome)
	assert.Equal(t, first, result.Value)
}

func TestService_Attachments_FallbackOnUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockNoticeSource(ctrl)
	service := NewService(memory.New(), source, testTTLConfig(), zap.NewNop())

	attachments := []models.Attachment{{ID: 7, NoticeID: 42, Name: "map.pdf", URL: "https://files.example.com/map.pdf"}}
	fetchErr := &models.RemoteFetchError{Endpoint: "/notices/42/attachments", StatusCode: 503}

	gomock.InOrder(
		source.EXPECT().Attachments(gomock.Any(), int64(42)).Return(attachments, nil),
		source.EXPECT().Attachments(gomock.Any(), int64(42)).Return(nil, fetchErr),
	)

	ctx := context.Background()
	_, err := service.Attachments(ctx, 42, false)
	require.NoError(t, err)

	// Forced refresh fails upstream; the cached copy is served degraded
	result, err := service.Attachments(ctx, 42, true)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFallback, result.Outcome)
	assert.Equal(t, attachments, result.Value)
}

func TestService_Leave_ErrorWithoutFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockNoticeSource(ctrl)
	service := NewService(memory.New(), source, testTTLConfig(), zap.NewNop())

	fetchErr := &models.RemoteFetchError{Endpoint: "/leave/u-17", StatusCode: 500}
	source.EXPECT().LeaveSummary(gomock.Any(), "u-17").Return(models.LeaveSummary{}, fetchErr)

	_, err := service.Leave(context.Background(), "u-17", false)
	assert.ErrorIs(t, err, fetchErr)
}

func TestService_Reset_ClearsAllNamespaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockNoticeSource(ctrl)
	store := memory.New()
	service := NewService(store, source, testTTLConfig(), zap.NewNop())

	source.EXPECT().Notices(gomock.Any()).Return(fakeNotices(2), nil)
	source.EXPECT().NoticeDetail(gomock.Any(), int64(1)).Return(models.NoticeDetail{Notice: models.Notice{ID: 1}}, nil)
	source.EXPECT().LeaveSummary(gomock.Any(), "u-17").Return(models.LeaveSummary{UserID: "u-17"}, nil)

	ctx := context.Background()
	_, err := service.List(ctx, false)
	require.NoError(t, err)
	_, err = service.Detail(ctx, 1, false)
	require.NoError(t, err)
	_, err = service.Leave(ctx, "u-17", false)
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())

	require.NoError(t, service.Reset(ctx))
	assert.Equal(t, 0, store.Len())
}

func TestService_ClearNamespace_LeavesOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock.NewMockNoticeSource(ctrl)
	store := memory.New()
	service := NewService(store, source, testTTLConfig(), zap.NewNop())

	source.EXPECT().Notices(gomock.Any()).Return(fakeNotices(1), nil).Times(2)
	source.EXPECT().LeaveSummary(gomock.Any(), "u-17").Return(models.LeaveSummary{UserID: "u-17"}, nil).Times(1)

	ctx := context.Background()
	_, err := service.List(ctx, false)
	require.NoError(t, err)
	_, err = service.Leave(ctx, "u-17", false)
	require.NoError(t, err)

	require.NoError(t, service.ClearNamespace(ctx, NamespaceNotices))

	// Notice list was cleared and refetches; leave data survived
	result, err := service.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFresh, result.Outcome)

	leaveResult, err := service.Leave(ctx, "u-17", false)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCached, leaveResult.Outcome)
}
