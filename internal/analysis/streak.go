package analysis

import (
	"sort"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
)

// Streak computes logging continuity for the given log dates as of today.
// Dates may be in any order and may repeat; only the calendar day matters.
func Streak(dates []time.Time, today time.Time) domain.StreakSummary {
	if len(dates) == 0 {
		return domain.StreakSummary{
			Status:          domain.StreakNew,
			DisciplineScore: DisciplineScore(domain.StreakNew),
		}
	}

	days := make([]time.Time, 0, len(dates))
	seen := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		n := domain.NormalizeDate(d)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		days = append(days, n)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	latest := days[0]
	t := domain.NormalizeDate(today)
	yesterday := t.AddDate(0, 0, -1)

	summary := domain.StreakSummary{
		Status:      domain.StreakBroken,
		LastLogDate: latest.Format(domain.DateLayout),
	}

	if latest.Equal(t) || latest.Equal(yesterday) {
		summary.Status = domain.StreakContinue
		summary.Length = 1
		for i := 1; i < len(days); i++ {
			if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
				break
			}
			summary.Length++
		}
	}

	summary.DisciplineScore = DisciplineScore(summary.Status)
	return summary
}

// DisciplineScore maps a streak status to a 0-100 score.
func DisciplineScore(status domain.StreakStatus) int {
	switch status {
	case domain.StreakContinue:
		return 100
	case domain.StreakNew:
		return 50
	default:
		return 20
	}
}
