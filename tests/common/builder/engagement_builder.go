//go:build unit || e2e

package builder

import (
	"time"

	"venue-deals/internal/domain/engagement"
	reqdto "venue-deals/internal/handler/dto/request"
	"venue-deals/internal/usecase/commands"
	"venue-deals/internal/usecase/queries"

	"github.com/google/uuid"
)

type EngagementBuilder struct {
	DealID     uuid.UUID
	Source     string
	Signal     string
	RecordedAt time.Time
}

func NewEngagementBuilder() *EngagementBuilder {
	return &EngagementBuilder{
		DealID:     uuid.New(),
		Source:     "203.0.113.7",
		Signal:     string(engagement.SignalLiked),
		RecordedAt: time.Date(2024, 6, 3, 19, 0, 0, 0, time.UTC),
	}
}

func (b *EngagementBuilder) With(mutate func(*EngagementBuilder)) *EngagementBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EngagementBuilder) BuildDomain() (*engagement.Record, error) {
	return engagement.NewRecord(b.DealID, b.Source, b.Signal, b.RecordedAt)
}

func (b *EngagementBuilder) BuildInput() commands.RecordEngagementInput {
	at := b.RecordedAt
	return commands.RecordEngagementInput{
		DealID: b.DealID,
		Source: b.Source,
		Type:   b.Signal,
		At:     &at,
	}
}

func (b *EngagementBuilder) BuildRequestDTO() reqdto.RecordEngagementRequest {
	return reqdto.RecordEngagementRequest{
		DealID: b.DealID,
		Type:   b.Signal,
	}
}

func (b *EngagementBuilder) BuildRecent() *queries.RecentEngagement {
	return &queries.RecentEngagement{
		DealID:     b.DealID,
		Signal:     b.Signal,
		RecordedAt: b.RecordedAt,
	}
}

// Fluent builder methods
func (b *EngagementBuilder) WithDealID(dealID uuid.UUID) *EngagementBuilder {
	b.DealID = dealID
	return b
}

func (b *EngagementBuilder) WithSource(source string) *EngagementBuilder {
	b.Source = source
	return b
}

func (b *EngagementBuilder) WithRecordedAt(at time.Time) *EngagementBuilder {
	b.RecordedAt = at
	return b
}

func (b *EngagementBuilder) AsLiked() *EngagementBuilder {
	b.Signal = string(engagement.SignalLiked)
	return b
}

func (b *EngagementBuilder) AsDisliked() *EngagementBuilder {
	b.Signal = string(engagement.SignalDisliked)
	return b
}
