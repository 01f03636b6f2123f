// Package points defines the ledger records and scoring rules behind member
// point totals.
package points

import (
	"fmt"
	"math"
	"time"
)

// Kind distinguishes awards from reversals in the ledger.
type Kind string

const (
	KindAddition Kind = "addition"
	KindRemoval  Kind = "removal"
)

// Entry is one append-only ledger record. Amount is positive for additions
// and negative for removals.
type Entry struct {
	Guild     string
	Member    string
	Task      string
	TaskID    string
	Kind      Kind
	Amount    int
	Timestamp time.Time
}

// AdditionKey is the ledger document name holding awards for member on task.
func AdditionKey(member, taskName string) string {
	return fmt.Sprintf("point_addition_%s_%s", member, taskName)
}

// RemovalKey is the ledger document name holding reversals for member on task.
func RemovalKey(member, taskName string) string {
	return fmt.Sprintf("point_removal_%s_%s", member, taskName)
}

// Key returns the document name the entry is filed under.
func (e Entry) Key() string {
	if e.Kind == KindRemoval {
		return RemovalKey(e.Member, e.Task)
	}
	return AdditionKey(e.Member, e.Task)
}

// Same reports whether o records the same ledger event as e. Timestamps are
// compared with Equal so entries survive a storage round trip.
func (e Entry) Same(o Entry) bool {
	return e.Guild == o.Guild && e.Member == o.Member && e.TaskID == o.TaskID &&
		e.Kind == o.Kind && e.Amount == o.Amount && e.Timestamp.Equal(o.Timestamp)
}

// Outstanding is the net amount still credited by entries that belong to
// guild and taskID: every addition minus every prior removal.
func Outstanding(entries []Entry, guild, taskID string) int {
	total := 0
	for _, e := range entries {
		if e.Guild != guild || e.TaskID != taskID {
			continue
		}
		total += e.Amount
	}
	return total
}

// CalculateBonus returns value plus a bonus for finishing early. The bonus is
// half the per-day value multiplied by the whole days left before due, so a
// task finished the day it is created pays exactly value.
//
// A lifetime shorter than one day counts as one day. Days left never go
// negative; overdue tasks are already shrunk by due-expiry.
func CalculateBonus(start, due, now time.Time, value int) int {
	totalDays := wholeDays(due.Sub(start))
	if totalDays <= 0 {
		totalDays = 1
	}
	leftDays := max(wholeDays(due.Sub(now)), 0)

	bonus := math.RoundToEven(float64(value) / float64(totalDays) / 2 * float64(leftDays))
	return int(bonus) + value
}

// wholeDays floors d to days, rounding toward negative infinity.
func wholeDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}
