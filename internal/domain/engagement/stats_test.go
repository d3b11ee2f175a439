//go:build unit

package engagement_test

import (
	"testing"

	"venue-deals/internal/domain/engagement"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	cases := []struct {
		name     string
		liked    int64
		disliked int64
		rate     string
		bucket   engagement.Bucket
	}{
		{name: "記録なしは0%", rate: "0", bucket: engagement.BucketLow},
		{name: "上書き後の低評価1件", liked: 0, disliked: 1, rate: "0", bucket: engagement.BucketLow},
		{name: "全件高評価", liked: 4, rate: "100", bucket: engagement.BucketExcellent},
		{name: "ちょうど70%", liked: 7, disliked: 3, rate: "70", bucket: engagement.BucketExcellent},
		{name: "ちょうど50%", liked: 1, disliked: 1, rate: "50", bucket: engagement.BucketGood},
		{name: "ちょうど30%", liked: 3, disliked: 7, rate: "30", bucket: engagement.BucketAverage},
		{name: "2桁に丸める", liked: 1, disliked: 2, rate: "33.33", bucket: engagement.BucketAverage},
		{name: "切り上げ", liked: 2, disliked: 1, rate: "66.67", bucket: engagement.BucketGood},
		{name: "1/8は12.5", liked: 1, disliked: 7, rate: "12.5", bucket: engagement.BucketLow},
		{name: "半分は0から遠い方へ", liked: 1, disliked: 31, rate: "3.13", bucket: engagement.BucketLow},
		{name: "1/16は6.25", liked: 1, disliked: 15, rate: "6.25", bucket: engagement.BucketLow},
		{name: "29.99%はaverage未満", liked: 2999, disliked: 7001, rate: "29.99", bucket: engagement.BucketLow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := engagement.NewStats(c.liked, c.disliked)

			assert.Equal(t, c.liked, s.Liked())
			assert.Equal(t, c.disliked, s.Disliked())
			assert.Equal(t, c.liked+c.disliked, s.Total())
			assert.True(t, decimal.RequireFromString(c.rate).Equal(s.Rate()), "rate: want %s got %s", c.rate, s.Rate())
			assert.Equal(t, c.bucket, s.Bucket())
		})
	}
}

func TestStats_RateLaw(t *testing.T) {
	for n := int64(0); n <= 12; n++ {
		for m := int64(0); m <= 12; m++ {
			s := engagement.NewStats(n, m)
			if n+m == 0 {
				assert.True(t, s.Rate().IsZero())
				continue
			}
			want := decimal.NewFromInt(100 * n).Div(decimal.NewFromInt(n + m)).Round(2)
			assert.True(t, want.Equal(s.Rate()), "n=%d m=%d want %s got %s", n, m, want, s.Rate())
		}
	}
}

func TestNewStats_ClampsNegative(t *testing.T) {
	s := engagement.NewStats(-1, -3)
	assert.Equal(t, int64(0), s.Total())
}
