package engagement

import "github.com/shopspring/decimal"

type Bucket string

const (
	BucketExcellent Bucket = "excellent"
	BucketGood      Bucket = "good"
	BucketAverage   Bucket = "average"
	BucketLow       Bucket = "low"
)

const ratePrecision = 2

var (
	hundred            = decimal.NewFromInt(100)
	excellentThreshold = decimal.NewFromInt(70)
	goodThreshold      = decimal.NewFromInt(50)
	averageThreshold   = decimal.NewFromInt(30)
)

// Stats aggregates signals for one deal or one venue.
type Stats struct {
	liked    int64
	disliked int64
}

func NewStats(liked, disliked int64) Stats {
	if liked < 0 {
		liked = 0
	}
	if disliked < 0 {
		disliked = 0
	}
	return Stats{liked: liked, disliked: disliked}
}

func (s Stats) Liked() int64    { return s.liked }
func (s Stats) Disliked() int64 { return s.disliked }
func (s Stats) Total() int64    { return s.liked + s.disliked }

// Rate is the liked share in percent, rounded half away from zero to two
// places. It is zero when nothing has been recorded.
func (s Stats) Rate() decimal.Decimal {
	total := s.Total()
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(s.liked).
		Mul(hundred).
		DivRound(decimal.NewFromInt(total), ratePrecision)
}

// Bucket is for reporting only; nothing gates on it.
func (s Stats) Bucket() Bucket {
	return BucketFor(s.Rate())
}

func BucketFor(rate decimal.Decimal) Bucket {
	switch {
	case rate.GreaterThanOrEqual(excellentThreshold):
		return BucketExcellent
	case rate.GreaterThanOrEqual(goodThreshold):
		return BucketGood
	case rate.GreaterThanOrEqual(averageThreshold):
		return BucketAverage
	default:
		return BucketLow
	}
}
