package services

import (
	"context"
	"fmt"
	"time"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/repository/sqlite"
)

// summaryServiceImpl implements the SummaryService interface
type summaryServiceImpl struct {
	repo sqlite.Repository
	now  func() time.Time
}

// NewSummaryService creates a new SummaryService instance
func NewSummaryService(repo sqlite.Repository) SummaryService {
	return NewSummaryServiceWithClock(repo, time.Now)
}

// NewSummaryServiceWithClock creates a SummaryService with an injectable clock
func NewSummaryServiceWithClock(repo sqlite.Repository, now func() time.Time) SummaryService {
	return &summaryServiceImpl{
		repo: repo,
		now:  now,
	}
}

// DailySummary totals worked time across tasks whose start date is today.
func (s *summaryServiceImpl) DailySummary(ctx context.Context) (*WorkSummary, error) {
	now := s.now()
	from := startOfDay(now)
	until := from.Add(24 * time.Hour)

	hours, minutes, err := s.sumWindow(ctx, from, until)
	if err != nil {
		return nil, err
	}

	return &WorkSummary{
		From:    from,
		To:      from,
		Hours:   hours,
		Minutes: minutes,
		Message: fmt.Sprintf("Total work today: %d hours %d minutes", hours, minutes),
	}, nil
}

// WeeklySummary totals worked time from the most recent Sunday on or
// before today through today, inclusive.
func (s *summaryServiceImpl) WeeklySummary(ctx context.Context) (*WorkSummary, error) {
	now := s.now()
	today := startOfDay(now)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	until := today.Add(24 * time.Hour)

	hours, minutes, err := s.sumWindow(ctx, weekStart, until)
	if err != nil {
		return nil, err
	}

	return &WorkSummary{
		From:    weekStart,
		To:      today,
		Hours:   hours,
		Minutes: minutes,
		Message: fmt.Sprintf("Total work this week (from %s to %s): %d hours %d minutes",
			weekStart.Format("2006-01-02"), today.Format("2006-01-02"), hours, minutes),
	}, nil
}

// sumWindow sums duration minutes across tasks whose start_time falls in
// [from, until). Tasks without a derived duration are excluded entirely.
// Totals strictly between zero and one minute are clamped up to one
// minute so tiny durations never report as zero.
func (s *summaryServiceImpl) sumWindow(ctx context.Context, from, until time.Time) (int, int, error) {
	tasks, err := s.repo.ListTasks(ctx, sqlite.SearchOptions{
		StartFrom:  &from,
		StartUntil: &until,
	})
	if err != nil {
		return 0, 0, err
	}

	var totalMinutes float64
	for _, task := range tasks {
		if task.DurationHours == nil {
			continue
		}
		totalMinutes += domain.Minutes(*task.DurationHours)
	}

	if totalMinutes > 0 && totalMinutes < 1 {
		totalMinutes = 1
	}

	// Floored division keeps minutes in [0, 60) for negative totals,
	// so -30 minutes reports as -1 hours 30 minutes.
	total := int(totalMinutes)
	hours, minutes := total/60, total%60
	if minutes < 0 {
		hours--
		minutes += 60
	}
	return hours, minutes, nil
}

// startOfDay truncates a time to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
