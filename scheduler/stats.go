package scheduler

import (
	"time"

	"github.com/glowbook/scheduler/models"
	"github.com/glowbook/scheduler/utils"
)

// DayStats is the per-date overview the dashboard renders. It is a
// lock-free read over one snapshot; writes landing mid-call are allowed to
// be missed.
type DayStats struct {
	Date           string    `json:"date"`
	Total          int       `json:"total"`
	PendingCount   int       `json:"pending_count"`
	ConfirmedCount int       `json:"confirmed_count"`
	CompletedCount int       `json:"completed_count"`
	NoShowCount    int       `json:"no_show_count"`
	CancelledCount int       `json:"cancelled_count"`
	BookedMinutes  int       `json:"booked_minutes"`
	LastUpdated    time.Time `json:"last_updated"`
}

// StatsForDate computes status counts and active booked minutes for a day.
func (e *Engine) StatsForDate(date string) (*DayStats, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, newValidation("%s", err)
	}
	appointments, err := e.repo.ListByDate(date)
	if err != nil {
		return nil, err
	}

	stats := &DayStats{Date: date, LastUpdated: e.now()}
	for _, a := range appointments {
		stats.Total++
		switch a.Status {
		case models.StatusPending:
			stats.PendingCount++
		case models.StatusConfirmed:
			stats.ConfirmedCount++
		case models.StatusCompleted:
			stats.CompletedCount++
		case models.StatusNoShow:
			stats.NoShowCount++
		case models.StatusCancelled:
			stats.CancelledCount++
		}
		if a.Status.IsActive() {
			stats.BookedMinutes += a.DurationMinutes
		}
	}
	return stats, nil
}
