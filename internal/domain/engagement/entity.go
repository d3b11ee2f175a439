package engagement

import (
	"time"

	"github.com/google/uuid"
)

// Record is the latest signal one source gave a deal. A later signal from the
// same source replaces both the type and the timestamp.
type Record struct {
	dealID     uuid.UUID
	source     SourceIdentity
	signal     Signal
	recordedAt time.Time
}

func NewRecord(dealID uuid.UUID, source string, signal string, recordedAt time.Time) (*Record, error) {
	if dealID == uuid.Nil {
		return nil, ErrMissingDeal
	}
	src, err := NewSourceIdentity(source)
	if err != nil {
		return nil, err
	}
	sig, err := ParseSignal(signal)
	if err != nil {
		return nil, err
	}
	if recordedAt.IsZero() {
		return nil, ErrMissingRecordedAt
	}
	return &Record{
		dealID:     dealID,
		source:     src,
		signal:     sig,
		recordedAt: recordedAt,
	}, nil
}

func (r *Record) DealID() uuid.UUID      { return r.dealID }
func (r *Record) Source() SourceIdentity { return r.source }
func (r *Record) Signal() Signal         { return r.signal }
func (r *Record) RecordedAt() time.Time  { return r.recordedAt }
