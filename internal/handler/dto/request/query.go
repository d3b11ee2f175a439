package request

import (
	"strings"
	"time"

	"venue-deals/internal/pkg/errs"
)

// localAtLayout is accepted for "at" and read in the venue zone.
const localAtLayout = "2006-01-02T15:04"

var ErrInvalidAt = errs.NewMarked("at must be RFC3339 or YYYY-MM-DDTHH:MM", errs.ErrValidation)

type ActiveDealsQuery struct {
	At string `form:"at"`
}

// ParseAt returns nil when at is empty, meaning "now".
func (q *ActiveDealsQuery) ParseAt(loc *time.Location) (*time.Time, error) {
	s := strings.TrimSpace(q.At)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation(localAtLayout, s, loc); err == nil {
		return &t, nil
	}
	return nil, ErrInvalidAt
}
