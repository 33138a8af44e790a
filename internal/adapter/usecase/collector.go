package usecase

import (
	"context"
	"fmt"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

// TokenCollector gathers the push tokens a campaign is delivered to.
type TokenCollector struct {
	source   port.TokenSource
	segments port.SegmentResolver
}

// NewTokenCollector creates a collector reading from source. A nil
// resolver selects BroadcastSegments.
func NewTokenCollector(source port.TokenSource, segments port.SegmentResolver) *TokenCollector {
	if segments == nil {
		segments = BroadcastSegments{}
	}
	return &TokenCollector{source: source, segments: segments}
}

// Collect enumerates every user admitted by the segment resolver and
// returns their tokens, deduplicated by token value with the first seen
// owner retained. Any read failure aborts the collection.
func (c *TokenCollector) Collect(ctx context.Context, segment string) ([]domain.TokenEntry, error) {
	userIDs, err := c.source.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var entries []domain.TokenEntry
	for _, userID := range userIDs {
		ok, err := c.segments.Includes(ctx, segment, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve segment %q for user %s: %w", segment, userID, err)
		}
		if !ok {
			continue
		}
		tokens, err := c.source.ListTokens(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list tokens of user %s: %w", userID, err)
		}
		entries = append(entries, tokens...)
	}
	return domain.DedupTokens(entries), nil
}

// BroadcastSegments admits every user regardless of segment.
type BroadcastSegments struct{}

// Includes implements port.SegmentResolver.
func (BroadcastSegments) Includes(context.Context, string, string) (bool, error) {
	return true, nil
}
