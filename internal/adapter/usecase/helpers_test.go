package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port/mocks"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// makeTokens returns n distinct tokens longer than the reported prefix.
func makeTokens(n int) []domain.TokenEntry {
	out := make([]domain.TokenEntry, n)
	for i := range out {
		out[i] = domain.TokenEntry{
			Token:  fmt.Sprintf("tok-%05d-%s", i, strings.Repeat("x", 40)),
			UserID: fmt.Sprintf("user-%d", i%7),
		}
	}
	return out
}

type fixture struct {
	repo      *mocks.MockCampaignRepository
	legacy    *mocks.MockLegacyCampaignRepository
	source    *mocks.MockTokenSource
	sender    *mocks.MockPushSender
	publisher *mocks.MockDeliveryPublisher
	svc       *CampaignUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:      mocks.NewMockCampaignRepository(t),
		legacy:    mocks.NewMockLegacyCampaignRepository(t),
		source:    mocks.NewMockTokenSource(t),
		sender:    mocks.NewMockPushSender(t),
		publisher: mocks.NewMockDeliveryPublisher(t),
	}
	logger := discardLogger()
	f.svc = NewCampaignUseCase(
		f.repo,
		f.legacy,
		NewTokenCollector(f.source, nil),
		NewBatchDeliverer(f.sender, domain.MaxBatchSize, logger),
		f.publisher,
		logger,
		CampaignOptions{},
	)
	f.svc.now = func() time.Time { return fixedNow }
	f.svc.newID = func() string { return "generated-id" }
	return f
}
