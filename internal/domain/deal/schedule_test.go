//go:build unit

package deal_test

import (
	"testing"
	"time"

	"venue-deals/internal/domain/deal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOneOffSchedule(t *testing.T) {
	cases := []struct {
		name   string
		start  string
		end    string
		window func(t *testing.T) deal.TimeWindow
		errIs  error
	}{
		{name: "同日OK", start: "2024-06-01", end: "2024-06-01"},
		{name: "複数日OK", start: "2024-06-01", end: "2024-06-30"},
		{name: "開始が終了より後NG", start: "2024-06-02", end: "2024-06-01", errIs: deal.ErrInvalidDateRange},
		{name: "開始日なしNG", end: "2024-06-01", errIs: deal.ErrMissingDateRange},
		{name: "終了日なしNG", start: "2024-06-01", errIs: deal.ErrMissingDateRange},
		{
			name:  "時間帯が逆転NG",
			start: "2024-06-01", end: "2024-06-01",
			window: func(t *testing.T) deal.TimeWindow {
				return deal.TimeWindow{Start: mustClock(t, "22:00"), End: mustClock(t, "18:00")}
			},
			errIs: deal.ErrInvalidTimeWindow,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var start, end deal.Date
			if c.start != "" {
				start = mustDate(t, c.start)
			}
			if c.end != "" {
				end = mustDate(t, c.end)
			}
			var window deal.TimeWindow
			if c.window != nil {
				window = c.window(t)
			}

			s, err := deal.NewOneOffSchedule(start, end, window)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, deal.ModeOneOff, s.Mode())
			assert.Equal(t, start, s.DateStart())
			assert.Equal(t, end, s.DateEnd())
		})
	}
}

func TestNewRecurringSchedule(t *testing.T) {
	mon := deal.NewWeekdaySet(time.Monday)

	cases := []struct {
		name       string
		recurrence deal.RecurrenceType
		days       deal.WeekdaySet
		errIs      error
	}{
		{name: "毎日OK", recurrence: deal.RecurrenceDaily},
		{name: "毎週OK", recurrence: deal.RecurrenceWeekly, days: mon},
		{name: "曜日なしの毎週NG", recurrence: deal.RecurrenceWeekly, errIs: deal.ErrEmptyRecurrenceDays},
		{name: "曜日ありの毎日NG", recurrence: deal.RecurrenceDaily, days: mon, errIs: deal.ErrUnexpectedDays},
		{name: "未知の種別NG", recurrence: "monthly", days: mon, errIs: deal.ErrUnknownRecurrence},
		{name: "種別なしNG", errIs: deal.ErrUnknownRecurrence},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := deal.NewRecurringSchedule(c.recurrence, c.days, nil, deal.TimeWindow{})

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, deal.ModeRecurring, s.Mode())
			assert.Equal(t, c.recurrence, s.Recurrence())
			assert.Equal(t, c.days, s.Days())
			assert.Nil(t, s.RecurrenceEnd())
		})
	}

	t.Run("ゼロ値の終了日は未設定扱い", func(t *testing.T) {
		zero := deal.Date{}
		s, err := deal.NewRecurringSchedule(deal.RecurrenceDaily, 0, &zero, deal.TimeWindow{})
		require.NoError(t, err)
		assert.Nil(t, s.RecurrenceEnd())
	})
}

func TestTimeWindow_Contains(t *testing.T) {
	ten, _ := deal.NewTimeOfDay(10, 0, 0)
	twelve, _ := deal.NewTimeOfDay(12, 0, 0)

	assert.True(t, deal.TimeWindow{}.Contains(0), "終日")
	assert.True(t, deal.TimeWindow{}.IsAllDay())
	assert.True(t, deal.TimeWindow{Start: &ten, End: &twelve}.Contains(ten))
	assert.True(t, deal.TimeWindow{Start: &ten, End: &twelve}.Contains(twelve))
	assert.False(t, deal.TimeWindow{Start: &ten, End: &twelve}.Contains(twelve+1))
	assert.False(t, deal.TimeWindow{Start: &ten}.Contains(ten-1))
	assert.True(t, deal.TimeWindow{End: &ten}.Contains(0))
}
