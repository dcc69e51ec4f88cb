package service

import (
	"time"

	"habit_quest/internal/model"
)

// DayOf は指定ロケーションにおける「その日」の 00:00 を返す。
// 連続記録やヒートマップの日付判定はすべてこの境界で行う。
func DayOf(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// CalculateStreak は達成履歴から現在の連続日数を計算する。
//
// ルール:
//   - 同じ日の複数回達成は 1 日としてカウントする
//   - 最新の達成が「今日」または「昨日」でなければ連続は途切れている (0)
//   - 昨日が最新の場合、今日まだ達成していなくても連続は継続中とみなす (猶予1日)
//
// completions の並び順は問わない。
func CalculateStreak(completions []*model.HabitCompletion, now time.Time, loc *time.Location) int {
	if len(completions) == 0 {
		return 0
	}

	// 重複日を潰して日単位の集合にする
	days := make(map[time.Time]struct{}, len(completions))
	var latest time.Time
	for _, c := range completions {
		day := DayOf(c.CompletedAt, loc)
		days[day] = struct{}{}
		if day.After(latest) {
			latest = day
		}
	}

	today := DayOf(now, loc)
	yesterday := today.AddDate(0, 0, -1)

	if !latest.Equal(today) && !latest.Equal(yesterday) {
		return 0
	}

	// 最新の達成日から1日ずつ遡る
	streak := 0
	for cursor := latest; ; cursor = cursor.AddDate(0, 0, -1) {
		if _, ok := days[cursor]; !ok {
			break
		}
		streak++
	}
	return streak
}
