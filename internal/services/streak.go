package services

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/models"
	"github.com/tinysprout/garbha/backend/internal/progress"
)

// StreakService derives daily-activity streaks from completion history.
type StreakService struct {
	exercises *progress.ExerciseStore
	logger    *logrus.Logger
}

func NewStreakService(exercises *progress.ExerciseStore, logger *logrus.Logger) *StreakService {
	return &StreakService{
		exercises: exercises,
		logger:    logger,
	}
}

// Streak computes the profile's current and longest streaks as of now.
func (s *StreakService) Streak(ctx context.Context, profileID string, now time.Time) models.StreakResponse {
	history := s.exercises.CompletionHistory(ctx, profileID)
	days := make([]time.Time, 0, len(history))
	for _, rec := range history {
		days = append(days, rec.CompletedAt)
	}
	return ComputeStreak(days, now)
}

// ComputeStreak reduces completion timestamps to calendar-day streaks. The
// current streak counts back from today, or from yesterday when today has
// no activity yet.
func ComputeStreak(completions []time.Time, now time.Time) models.StreakResponse {
	if len(completions) == 0 {
		return models.StreakResponse{}
	}

	seen := map[string]bool{}
	var days []time.Time
	for _, t := range completions {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		key := day.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	last := days[len(days)-1]

	current := 0
	if last.Equal(today) || last.Equal(today.AddDate(0, 0, -1)) {
		current = 1
		for i := len(days) - 2; i >= 0; i-- {
			if days[i+1].Sub(days[i]) != 24*time.Hour {
				break
			}
			current++
		}
	}

	return models.StreakResponse{
		Current:    current,
		Longest:    longest,
		LastActive: last.Format("2006-01-02"),
	}
}
