package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"bookmark_enricher/internal/domain"
	"bookmark_enricher/internal/service/mocks"
	"bookmark_enricher/testdata/utils"
)

type StatusServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	enrichments *mocks.MockEnrichmentStore
	media       *mocks.MockMediaStore
	enqueuer    *mocks.MockEnqueuer

	service *StatusService
}

func (s *StatusServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.enrichments = mocks.NewMockEnrichmentStore(s.ctrl)
	s.media = mocks.NewMockMediaStore(s.ctrl)
	s.enqueuer = mocks.NewMockEnqueuer(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewStatusService(s.enrichments, s.media, s.enqueuer, logger)
}

func (s *StatusServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatusServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceTestSuite))
}

func (s *StatusServiceTestSuite) TestGetEnrichmentStatus() {
	ctx := context.Background()

	record := &domain.EnrichmentRecord{
		ID:         "enr-1",
		BookmarkID: "bm-1",
		Status:     domain.StatusCompleted,
		Summary:    utils.Ptr("a summary"),
	}
	media := []domain.DownloadedMedia{
		{ID: "med-1", EnrichmentID: "enr-1", Status: domain.DownloadStatusCompleted},
	}

	s.enrichments.EXPECT().GetByBookmarkID(ctx, "bm-1").Return(record, nil)
	s.media.EXPECT().ListByEnrichment(ctx, "enr-1").Return(media, nil)

	snapshot, err := s.service.GetEnrichmentStatus(ctx, "bm-1")

	s.NoError(err)
	s.Equal(record, snapshot.Record)
	s.Len(snapshot.Media, 1)
}

func (s *StatusServiceTestSuite) TestGetEnrichmentStatus_NotFound() {
	ctx := context.Background()

	s.enrichments.EXPECT().GetByBookmarkID(ctx, "missing").Return(nil, domain.ErrNotFound)

	snapshot, err := s.service.GetEnrichmentStatus(ctx, "missing")

	s.Nil(snapshot)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *StatusServiceTestSuite) TestRetryEnrichment_Enqueues() {
	ctx := context.Background()

	record := &domain.EnrichmentRecord{
		ID:         "enr-1",
		BookmarkID: "bm-1",
		Status:     domain.StatusFailed,
		RetryCount: 2,
	}
	s.enrichments.EXPECT().GetByBookmarkID(ctx, "bm-1").Return(record, nil)
	s.enqueuer.EXPECT().PublishRequest(ctx, &domain.EnrichmentRequest{
		BookmarkID: "bm-1",
		Reason:     "retry",
	}).Return(nil)

	err := s.service.RetryEnrichment(ctx, "bm-1")

	s.NoError(err)
}

func (s *StatusServiceTestSuite) TestRetryEnrichment_RejectsWhileProcessing() {
	ctx := context.Background()

	record := &domain.EnrichmentRecord{
		ID:         "enr-1",
		BookmarkID: "bm-1",
		Status:     domain.StatusProcessing,
	}
	s.enrichments.EXPECT().GetByBookmarkID(ctx, "bm-1").Return(record, nil)

	err := s.service.RetryEnrichment(ctx, "bm-1")

	s.ErrorIs(err, domain.ErrAlreadyProcessing)
}

func (s *StatusServiceTestSuite) TestRetryEnrichment_EnqueueFails() {
	ctx := context.Background()

	record := &domain.EnrichmentRecord{
		ID:         "enr-1",
		BookmarkID: "bm-1",
		Status:     domain.StatusFailed,
	}
	s.enrichments.EXPECT().GetByBookmarkID(ctx, "bm-1").Return(record, nil)
	s.enqueuer.EXPECT().PublishRequest(ctx, gomock.Any()).Return(errors.New("broker unavailable"))

	err := s.service.RetryEnrichment(ctx, "bm-1")

	s.Error(err)
	s.NotErrorIs(err, domain.ErrAlreadyProcessing)
}
