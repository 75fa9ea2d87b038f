// Package age computes display ages for tasks and boards.
package age

import "time"

// AgeData returns how long ago a timestamp was, and whether it is usable for
// display. Zero and future timestamps are not.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() || then.After(now) {
		return 0, false
	}
	return now.Sub(then), true
}

// CompletionData returns how long a task took from creation to completion
// and whether timing data exists.
func CompletionData(createdAt time.Time, completedAt *time.Time) (time.Duration, bool) {
	if completedAt == nil || createdAt.IsZero() || completedAt.Before(createdAt) {
		return 0, false
	}
	return completedAt.Sub(createdAt), true
}
