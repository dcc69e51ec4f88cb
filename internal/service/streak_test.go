package service

import (
	"testing"
	"time"

	"habit_quest/internal/model"

	"github.com/stretchr/testify/assert"
)

// 固定の「現在時刻」。日境界まわりのテストを決定的にする
var streakNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func completionAt(t time.Time) *model.HabitCompletion {
	return &model.HabitCompletion{CompletedAt: t}
}

func daysAgo(n int, hour int) time.Time {
	return time.Date(2025, 6, 15, hour, 0, 0, 0, time.UTC).AddDate(0, 0, -n)
}

func TestCalculateStreak(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name        string
		completions []*model.HabitCompletion
		want        int
	}{
		{
			name:        "正常系: 達成履歴なしは0",
			completions: nil,
			want:        0,
		},
		{
			name: "正常系: 今日だけ達成でストリーク1",
			completions: []*model.HabitCompletion{
				completionAt(daysAgo(0, 9)),
			},
			want: 1,
		},
		{
			name: "正常系: 今日を含む3日連続",
			completions: []*model.HabitCompletion{
				completionAt(daysAgo(0, 9)),
				completionAt(daysAgo(1, 21)),
				completionAt(daysAgo(2, 7)),
			},
			want: 3,
		},
		{
			name: "正常系: 昨日が最新でも猶予1日で継続中",
			completions: []*model.HabitCompletion{
				completionAt(daysAgo(1, 22)),
				completionAt(daysAgo(2, 8)),
			},
			want: 2,
		},
		{
			name: "正常系: 一昨日が最新なら途切れて0",
			completions: []*model.HabitCompletion{
				completionAt(daysAgo(2, 8)),
				completionAt(daysAgo(3, 8)),
				completionAt(daysAgo(4, 8)),
			},
			want: 0,
		},
		{
			name: "正常系: 同じ日の複数回達成は1日として数える",
			completions: []*model.HabitCompletion{
				completionAt(daysAgo(0, 8)),
				completionAt(daysAgo(0, 12)),
				completionAt(daysAgo(0, 20)),
				completionAt(daysAgo(1, 9)),
			},
			want: 2,
		},
		{
			name: "正常系: 途中に空白日があるとそこで止まる",
			completions: []*model.HabitCompletion{
				completionAt(daysAgo(0, 9)),
				completionAt(daysAgo(1, 9)),
				// 2日前は未達成
				completionAt(daysAgo(3, 9)),
				completionAt(daysAgo(4, 9)),
			},
			want: 2,
		},
		{
			name: "正常系: 並び順に依存しない",
			completions: []*model.HabitCompletion{
				completionAt(daysAgo(2, 9)),
				completionAt(daysAgo(0, 9)),
				completionAt(daysAgo(1, 9)),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStreak(tt.completions, streakNow, loc)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 日境界はロケーションのローカル時刻で判定される。
// UTCの23:30はJSTでは翌日8:30なので、JSTで見ると「今日」の達成になる。
func TestCalculateStreak_タイムゾーン境界(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	// JSTの 2025-06-15 08:30 (UTCでは前日 23:30)
	completion := completionAt(time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC))
	// JSTの 2025-06-15 21:00
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, CalculateStreak([]*model.HabitCompletion{completion}, now, jst),
		"JST基準では当日の達成としてカウントされるはず")

	// 同じデータをUTC基準で見ると「昨日」の達成。猶予1日でまだ継続中
	assert.Equal(t, 1, CalculateStreak([]*model.HabitCompletion{completion}, now, time.UTC))
}

func TestDayOf(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	// UTC 23:30 はJSTでは翌日
	got := DayOf(time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC), jst)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, jst), got)

	// 同じ瞬間でもUTC基準なら6/14
	got = DayOf(time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), got)
}
