package cli

import (
	"context"
	"fmt"
)

// DailySummary prints total worked time for today.
func (a *App) DailySummary(ctx context.Context) error {
	summary, err := a.summaries.DailySummary(ctx)
	if err != nil {
		return a.errors.Handle("summarize today", err)
	}

	fmt.Fprintln(a.out, summary.Message)
	return nil
}

// WeeklySummary prints total worked time since the most recent Sunday.
func (a *App) WeeklySummary(ctx context.Context) error {
	summary, err := a.summaries.WeeklySummary(ctx)
	if err != nil {
		return a.errors.Handle("summarize this week", err)
	}

	fmt.Fprintln(a.out, summary.Message)
	return nil
}
