package entity

import (
	"time"

	"github.com/jinzhu/now"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// MaxDuration is the per-unit ceiling; every unit caps a challenge at one year.
var MaxDuration = map[DurationUnit]int{
	UnitDays:   365,
	UnitWeeks:  52,
	UnitMonths: 12,
}

func (u DurationUnit) Valid() bool {
	_, ok := MaxDuration[u]
	return ok
}

// EndDate returns the deadline of a challenge that starts at start.
// Days and weeks are fixed-length offsets. Months use calendar addition and
// clamp to the last day of the target month, so Jan 31 + 1 month is Feb 28/29.
func EndDate(start time.Time, duration int, unit DurationUnit) time.Time {
	switch unit {
	case UnitWeeks:
		return start.Add(time.Duration(duration) * week)
	case UnitMonths:
		return AddMonths(start, duration)
	default:
		return start.Add(time.Duration(duration) * day)
	}
}

func AddMonths(t time.Time, months int) time.Time {
	target := now.With(t).BeginningOfMonth().AddDate(0, months, 0)
	last := now.With(target).EndOfMonth().Day()
	d := t.Day()
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Deadline recomputes the authoritative end of the challenge from its start.
// The stored EndDate is not trusted here: it is rewritten on completion.
func (c *Challenge) Deadline() time.Time {
	return EndDate(c.StartDate, c.Duration, c.DurationUnit)
}

func (c *Challenge) Overdue(at time.Time) bool {
	return c.Status == StatusOngoing && at.After(c.Deadline())
}

// ExpiredStatus is the terminal status an overdue challenge moves to.
func (c *Challenge) ExpiredStatus() ChallengeStatus {
	if c.CompletedTasksCount >= c.TotalTasksCount {
		return StatusCompleted
	}
	return StatusFailed
}
