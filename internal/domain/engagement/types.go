package engagement

import "venue-deals/internal/pkg/errs"

var (
	ErrInvalidSignal     = errs.NewMarked("engagement type must be liked or disliked", errs.ErrValidation)
	ErrEmptySource       = errs.NewMarked("source identity cannot be empty", errs.ErrValidation)
	ErrSourceTooLong     = errs.NewMarked("source identity exceeds maximum length", errs.ErrValidation)
	ErrMissingDeal       = errs.NewMarked("deal id is required", errs.ErrValidation)
	ErrMissingRecordedAt = errs.NewMarked("recorded time is required", errs.ErrValidation)
)

const MaxSourceIdentityLength = 255

type Signal string

const (
	SignalLiked    Signal = "liked"
	SignalDisliked Signal = "disliked"
)

func ParseSignal(s string) (Signal, error) {
	switch sig := Signal(s); sig {
	case SignalLiked, SignalDisliked:
		return sig, nil
	default:
		return "", ErrInvalidSignal
	}
}

func (s Signal) String() string { return string(s) }

// SourceIdentity is an opaque per-origin token. Two callers behind the same
// origin share one identity.
type SourceIdentity string

func NewSourceIdentity(s string) (SourceIdentity, error) {
	if s == "" {
		return "", ErrEmptySource
	}
	if len(s) > MaxSourceIdentityLength {
		return "", ErrSourceTooLong
	}
	return SourceIdentity(s), nil
}

func (s SourceIdentity) String() string { return string(s) }
