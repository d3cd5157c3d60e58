package domain

import (
	"fmt"
	"time"
)

// DurationHours returns the elapsed time between start and end as fractional
// hours. It returns nil when either timestamp is missing. No ordering check
// is performed, so an end before start yields a negative value.
func DurationHours(start, end *time.Time) *float64 {
	if start == nil || end == nil {
		return nil
	}
	hours := end.Sub(*start).Hours()
	return &hours
}

// FormatDuration renders a fractional-hour duration for display:
// "%.2f hours" for durations of at least one hour, "%.2f minutes" otherwise.
func FormatDuration(hours float64) string {
	if hours >= 1 {
		return fmt.Sprintf("%.2f hours", hours)
	}
	return fmt.Sprintf("%.2f minutes", hours*60)
}

// Minutes converts a fractional-hour duration to minutes.
func Minutes(hours float64) float64 {
	return hours * 60
}
