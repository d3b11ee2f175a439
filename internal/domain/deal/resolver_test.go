//go:build unit

package deal_test

import (
	"testing"
	"time"

	"venue-deals/internal/domain/deal"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = time.FixedZone("JST", 9*60*60)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, tokyo)
}

func mustDate(t *testing.T, s string) deal.Date {
	t.Helper()
	d, err := deal.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustClock(t *testing.T, s string) *deal.TimeOfDay {
	t.Helper()
	c, err := deal.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &c
}

func newDeal(t *testing.T, active bool, schedule deal.Schedule, createdAt time.Time) *deal.Deal {
	t.Helper()
	d, err := deal.NewDeal(uuid.New(), uuid.New(), deal.Content{Title: "Happy hour"}, active, schedule, createdAt)
	require.NoError(t, err)
	return d
}

func oneOff(t *testing.T, start, end string, window deal.TimeWindow) deal.Schedule {
	t.Helper()
	s, err := deal.NewOneOffSchedule(mustDate(t, start), mustDate(t, end), window)
	require.NoError(t, err)
	return s
}

func weekly(t *testing.T, days deal.WeekdaySet, until *deal.Date, window deal.TimeWindow) deal.Schedule {
	t.Helper()
	s, err := deal.NewRecurringSchedule(deal.RecurrenceWeekly, days, until, window)
	require.NoError(t, err)
	return s
}

func TestIsActiveAt_OneOffWithTimeWindow(t *testing.T) {
	window := deal.TimeWindow{Start: mustClock(t, "18:00"), End: mustClock(t, "22:00")}
	d := newDeal(t, true, oneOff(t, "2024-06-01", "2024-06-01", window), at(2024, 5, 1, 0, 0))

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "当日の時間帯内は有効", now: at(2024, 6, 1, 19, 0), want: true},
		{name: "開始時刻ちょうどは有効", now: at(2024, 6, 1, 18, 0), want: true},
		{name: "終了時刻ちょうどは有効", now: at(2024, 6, 1, 22, 0), want: true},
		{name: "当日の時間帯外は無効", now: at(2024, 6, 1, 23, 0), want: false},
		{name: "開始前の時刻は無効", now: at(2024, 6, 1, 17, 59), want: false},
		{name: "翌日は無効", now: at(2024, 6, 2, 19, 0), want: false},
		{name: "前日は無効", now: at(2024, 5, 31, 19, 0), want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, d.IsActiveAt(c.now))
		})
	}
}

func TestIsActiveAt_OneOffRange(t *testing.T) {
	d := newDeal(t, true, oneOff(t, "2024-06-01", "2024-06-10", deal.TimeWindow{}), at(2024, 5, 1, 0, 0))

	assert.True(t, d.IsActiveAt(at(2024, 6, 1, 0, 0)), "開始日の0時")
	assert.True(t, d.IsActiveAt(at(2024, 6, 5, 12, 0)), "期間中")
	assert.True(t, d.IsActiveAt(at(2024, 6, 10, 23, 59)), "終了日の終わり")
	assert.False(t, d.IsActiveAt(at(2024, 6, 11, 0, 0)), "終了日の翌日")
	assert.False(t, d.IsActiveAt(at(2024, 5, 31, 23, 59)), "開始日の前日")
}

func TestIsActiveAt_UsesLocationOfNow(t *testing.T) {
	d := newDeal(t, true, oneOff(t, "2024-06-01", "2024-06-01", deal.TimeWindow{}), at(2024, 5, 1, 0, 0))

	// 2024-06-01 08:00 JST is still 2024-05-31 in UTC.
	now := at(2024, 6, 1, 8, 0)
	assert.True(t, d.IsActiveAt(now))
	assert.False(t, d.IsActiveAt(now.UTC()))
}

func TestIsActiveAt_WeeklyRecurrence(t *testing.T) {
	days := deal.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)
	d := newDeal(t, true, weekly(t, days, nil, deal.TimeWindow{}), at(2024, 1, 1, 0, 0))

	// 2024-06-03 is a Monday.
	for offset, want := range []bool{true, false, true, false, true, false, false} {
		now := at(2024, 6, 3+offset, 12, 0)
		t.Run(now.Weekday().String(), func(t *testing.T) {
			assert.Equal(t, want, d.IsActiveAt(now))
		})
	}

	t.Run("火曜は無効で水曜は有効", func(t *testing.T) {
		assert.False(t, d.IsActiveAt(at(2024, 6, 4, 12, 0)))
		assert.True(t, d.IsActiveAt(at(2024, 6, 5, 12, 0)))
	})
}

func TestIsActiveAt_WeeklyUntilEndDate(t *testing.T) {
	days := deal.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)
	until := mustDate(t, "2024-06-05")
	d := newDeal(t, true, weekly(t, days, &until, deal.TimeWindow{}), at(2024, 1, 1, 0, 0))

	assert.True(t, d.IsActiveAt(at(2024, 6, 3, 9, 0)), "終了日前の月曜")
	assert.True(t, d.IsActiveAt(at(2024, 6, 5, 23, 0)), "終了日当日の水曜")
	assert.False(t, d.IsActiveAt(at(2024, 6, 7, 9, 0)), "終了日後の金曜")
}

func TestIsActiveAt_DailyWithOpenEndedWindow(t *testing.T) {
	t.Run("開始時刻のみ", func(t *testing.T) {
		s, err := deal.NewRecurringSchedule(deal.RecurrenceDaily, 0, nil, deal.TimeWindow{Start: mustClock(t, "17:00")})
		require.NoError(t, err)
		d := newDeal(t, true, s, at(2024, 1, 1, 0, 0))

		assert.False(t, d.IsActiveAt(at(2024, 6, 4, 16, 59)))
		assert.True(t, d.IsActiveAt(at(2024, 6, 4, 17, 0)))
		assert.True(t, d.IsActiveAt(at(2024, 6, 4, 23, 59)))
	})

	t.Run("終了時刻のみ", func(t *testing.T) {
		s, err := deal.NewRecurringSchedule(deal.RecurrenceDaily, 0, nil, deal.TimeWindow{End: mustClock(t, "11:30")})
		require.NoError(t, err)
		d := newDeal(t, true, s, at(2024, 1, 1, 0, 0))

		assert.True(t, d.IsActiveAt(at(2024, 6, 4, 0, 0)))
		assert.True(t, d.IsActiveAt(at(2024, 6, 4, 11, 30)))
		assert.False(t, d.IsActiveAt(at(2024, 6, 4, 11, 31)))
	})
}

func TestIsActiveAt_KillSwitch(t *testing.T) {
	schedules := map[string]deal.Schedule{
		"単発": oneOff(t, "2024-06-01", "2024-06-30", deal.TimeWindow{}),
		"毎週": weekly(t, deal.NewWeekdaySet(time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday), nil, deal.TimeWindow{}),
	}

	for name, s := range schedules {
		t.Run(name, func(t *testing.T) {
			d := newDeal(t, false, s, at(2024, 1, 1, 0, 0))
			for day := 1; day <= 30; day++ {
				for hour := 0; hour < 24; hour += 5 {
					require.False(t, d.IsActiveAt(at(2024, 6, day, hour, 0)))
				}
			}
		})
	}
}

func TestIsActiveAt_DegradesToNever(t *testing.T) {
	now := at(2024, 6, 5, 12, 0)
	created := at(2024, 1, 1, 0, 0)
	content := deal.Content{Title: "Stored"}

	cases := []struct {
		name     string
		schedule deal.Schedule
	}{
		{
			name:     "曜日が空の毎週",
			schedule: deal.ReconstructSchedule(deal.ModeRecurring, deal.Date{}, deal.Date{}, deal.RecurrenceWeekly, 0, nil, deal.TimeWindow{}),
		},
		{
			name:     "未知の繰り返し種別",
			schedule: deal.ReconstructSchedule(deal.ModeRecurring, deal.Date{}, deal.Date{}, "monthly", deal.NewWeekdaySet(time.Wednesday), nil, deal.TimeWindow{}),
		},
		{
			name:     "未知のモード",
			schedule: deal.ReconstructSchedule("sometimes", mustDate(t, "2024-06-01"), mustDate(t, "2024-06-30"), "", 0, nil, deal.TimeWindow{}),
		},
		{
			name:     "日付の欠けた単発",
			schedule: deal.ReconstructSchedule(deal.ModeOneOff, mustDate(t, "2024-06-01"), deal.Date{}, "", 0, nil, deal.TimeWindow{}),
		},
		{
			name: "開始が終了より後の時間帯",
			schedule: deal.ReconstructSchedule(deal.ModeRecurring, deal.Date{}, deal.Date{}, deal.RecurrenceDaily, 0, nil,
				deal.TimeWindow{Start: mustClock(t, "22:00"), End: mustClock(t, "02:00")}),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := deal.ReconstructDeal(uuid.New(), uuid.New(), content, true, c.schedule, created, created)
			assert.False(t, d.IsActiveAt(now))
		})
	}

	t.Run("nilのディールは無効", func(t *testing.T) {
		var d *deal.Deal
		assert.False(t, d.IsActiveAt(now))
	})
}

func TestFilterActive_MixedVenue(t *testing.T) {
	now := at(2024, 6, 5, 12, 0)
	current := newDeal(t, true, oneOff(t, "2024-06-01", "2024-06-30", deal.TimeWindow{}), at(2024, 5, 1, 0, 0))
	past := newDeal(t, true, oneOff(t, "2024-05-01", "2024-05-31", deal.TimeWindow{}), at(2024, 4, 1, 0, 0))

	got := deal.FilterActive([]*deal.Deal{past, current}, now)

	require.Len(t, got, 1)
	assert.Equal(t, current.ID(), got[0].ID())
}

func TestSortNewestFirst(t *testing.T) {
	s := oneOff(t, "2024-06-01", "2024-06-30", deal.TimeWindow{})
	content := deal.Content{Title: "Deal"}
	older := at(2024, 5, 1, 0, 0)
	newer := at(2024, 5, 2, 0, 0)

	idLow := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	idHigh := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	idNew := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	deals := []*deal.Deal{
		deal.ReconstructDeal(idHigh, uuid.Nil, content, true, s, older, older),
		deal.ReconstructDeal(idLow, uuid.Nil, content, true, s, older, older),
		deal.ReconstructDeal(idNew, uuid.Nil, content, true, s, newer, newer),
	}

	deal.SortNewestFirst(deals)

	got := make([]uuid.UUID, len(deals))
	for i, d := range deals {
		got[i] = d.ID()
	}
	want := []uuid.UUID{idNew, idLow, idHigh}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
