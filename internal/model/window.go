package model

import (
	"fmt"
	"time"
)

// ReferenceWindow first and last day of the calendar month preceding the
// processing date. Computed once per run and held constant, so every
// window-dependent rule is idempotent within one run.
type ReferenceWindow struct {
	First time.Time
	Last  time.Time
}

// PreviousMonthWindow derives the reference window from the processing date
func PreviousMonthWindow(now time.Time) ReferenceWindow {
	firstThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := firstThisMonth.AddDate(0, 0, -1)
	first := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
	return ReferenceWindow{First: first, Last: last}
}

// Contains reports whether t falls inside the window, inclusive both ends
func (w ReferenceWindow) Contains(t time.Time) bool {
	return !t.Before(w.First) && !t.After(w.Last)
}

// SheetSuffix "MM.YY" suffix appended to store sheet names
func (w ReferenceWindow) SheetSuffix() string {
	return w.Last.Format("01.06")
}

// BannerTitle heading line written above each store sheet
func (w ReferenceWindow) BannerTitle() string {
	return fmt.Sprintf("Inventory %s %d %d", w.Last.Month().String(), w.Last.Day(), w.Last.Year())
}
