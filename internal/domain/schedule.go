package domain

import "time"

// Recurrence describes how often a scheduled workout repeats.
type Recurrence string

const (
	RecurrenceOnce   Recurrence = "once"
	RecurrenceWeekly Recurrence = "weekly"
)

// WorkoutSchedule places a saved workout on the calendar, either once on a
// specific date or weekly on the listed days.
type WorkoutSchedule struct {
	ID         string     `json:"id,omitempty"`
	WorkoutID  string     `json:"workoutId"`
	Date       string     `json:"date"` // ISO date, used for one-time schedules
	Recurrence Recurrence `json:"recurrence"`
	DaysOfWeek []string   `json:"daysOfWeek,omitempty"` // "sunday".."saturday", weekly only
	CreatedAt  time.Time  `json:"createdAt,omitzero"`
	UpdatedAt  time.Time  `json:"updatedAt,omitzero"`
}
