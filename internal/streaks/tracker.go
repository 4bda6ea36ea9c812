package streaks

import (
	"sort"
	"time"
)

// Streaks holds the consecutive-training-day counts for one user.
type Streaks struct {
	Current int `json:"currentStreak"`
	Best    int `json:"bestStreak"`
}

// Compute derives the current and best streaks from the days on which the
// user completed at least one session. The current streak is anchored at
// today, with a one day grace period: a streak whose last session was
// yesterday still counts, since today's session may simply not be logged yet.
// Duplicate dates and time-of-day information are ignored.
func Compute(dates []time.Time, today time.Time) Streaks {
	if len(dates) == 0 {
		return Streaks{}
	}

	daySet := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		daySet[toDay(d)] = true
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	return Streaks{
		Current: currentStreak(daySet, toDay(today)),
		Best:    bestStreak(days),
	}
}

func currentStreak(daySet map[time.Time]bool, today time.Time) int {
	start := today
	if !daySet[start] {
		// grace period: today's session may not be logged yet
		start = start.AddDate(0, 0, -1)
		if !daySet[start] {
			return 0
		}
	}

	streak := 0
	for day := start; daySet[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func bestStreak(sortedDays []time.Time) int {
	best := 1
	run := 1
	for i := 1; i < len(sortedDays); i++ {
		if sortedDays[i].Sub(sortedDays[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

func toDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
