// Package normalize converts between the client-facing domain shapes
// (camelCase, nested, meals possibly keyed by slot) and the persisted row
// shapes (snake_case columns, meals always a typed sequence).
//
// Every Prepare/Restore pair is a lossless round trip for fields that exist
// under a name on both sides. Fields intentionally dropped on Prepare,
// namely client-supplied ids on create and stale timestamps, are regenerated
// by the repository layer, not here.
package normalize

import (
	"time"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
)

// WorkoutRow is the persisted workout document.
type WorkoutRow struct {
	ID                string                 `bson:"_id,omitempty"`
	UserID            string                 `bson:"user_id,omitempty"`
	Name              string                 `bson:"name"`
	Description       string                 `bson:"description"`
	Exercises         []domain.ExerciseEntry `bson:"exercises"`
	EstimatedDuration int                    `bson:"estimated_duration"`
	CreatedAt         time.Time              `bson:"created_at,omitempty"`
	UpdatedAt         time.Time              `bson:"updated_at,omitempty"`
}

// MealPlanRow is the persisted meal plan document. Meals are always stored
// in sequence form.
type MealPlanRow struct {
	ID             string            `bson:"_id,omitempty"`
	UserID         string            `bson:"user_id,omitempty"`
	Name           string            `bson:"name"`
	Description    string            `bson:"description,omitempty"`
	TotalNutrition *domain.Nutrition `bson:"total_nutrition,omitempty"`
	Meals          []domain.Meal     `bson:"meals"`
	CreatedAt      time.Time         `bson:"created_at,omitempty"`
	UpdatedAt      time.Time         `bson:"updated_at,omitempty"`
}

// ScheduleRow is the persisted workout schedule document.
type ScheduleRow struct {
	ID         string            `bson:"_id,omitempty"`
	UserID     string            `bson:"user_id,omitempty"`
	WorkoutID  string            `bson:"workout_id"`
	Date       string            `bson:"date"`
	Recurrence domain.Recurrence `bson:"recurrence"`
	DaysOfWeek []string          `bson:"days_of_week,omitempty"`
	CreatedAt  time.Time         `bson:"created_at,omitempty"`
	UpdatedAt  time.Time         `bson:"updated_at,omitempty"`
}

// PrepareWorkout maps a domain workout onto its row shape. The id is always
// dropped: creates let the repository assign one, updates address the row
// through the query filter. Owner and timestamps are attached by the
// repository, never taken from the client.
func PrepareWorkout(w domain.Workout) WorkoutRow {
	return WorkoutRow{
		Name:              w.Name,
		Description:       w.Description,
		Exercises:         w.Exercises,
		EstimatedDuration: w.EstimatedDuration,
	}
}

// RestoreWorkout maps a row back to the domain shape. The workout domain
// shape does not surface row timestamps.
func RestoreWorkout(row WorkoutRow) domain.Workout {
	return domain.Workout{
		ID:                row.ID,
		Name:              row.Name,
		Description:       row.Description,
		Exercises:         row.Exercises,
		EstimatedDuration: row.EstimatedDuration,
	}
}

// PrepareMealPlan maps a domain meal plan onto its row shape: id and every
// timestamp variant are dropped, totalNutrition becomes total_nutrition
// (omitted entirely when absent), and a keyed meal collection is flattened
// into sequence form with nil slots skipped and each key injected as the
// element's type. Numeric coercion of the totals happens at the JSON
// boundary (domain.Nutrition); by this point the values are numbers.
func PrepareMealPlan(p domain.MealPlan) MealPlanRow {
	meals := p.Meals.Sequence()
	if meals == nil {
		meals = []domain.Meal{}
	}
	var totals *domain.Nutrition
	if p.TotalNutrition != nil {
		t := *p.TotalNutrition
		totals = &t
	}
	return MealPlanRow{
		Name:           p.Name,
		Description:    p.Description,
		TotalNutrition: totals,
		Meals:          meals,
	}
}

// RestoreMealPlan maps a row back to the domain shape. Meals stay in
// sequence form; consumers that need the fixed six-slot view perform the
// explicit Meals.Keyed fold themselves.
func RestoreMealPlan(row MealPlanRow) domain.MealPlan {
	var totals *domain.Nutrition
	if row.TotalNutrition != nil {
		t := *row.TotalNutrition
		totals = &t
	}
	return domain.MealPlan{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		Meals:          domain.SequenceMeals(row.Meals),
		TotalNutrition: totals,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// PrepareSchedule maps a workout schedule onto its row shape.
func PrepareSchedule(s domain.WorkoutSchedule) ScheduleRow {
	return ScheduleRow{
		WorkoutID:  s.WorkoutID,
		Date:       s.Date,
		Recurrence: s.Recurrence,
		DaysOfWeek: s.DaysOfWeek,
	}
}

// RestoreSchedule maps a row back to the domain shape.
func RestoreSchedule(row ScheduleRow) domain.WorkoutSchedule {
	return domain.WorkoutSchedule{
		ID:         row.ID,
		WorkoutID:  row.WorkoutID,
		Date:       row.Date,
		Recurrence: row.Recurrence,
		DaysOfWeek: row.DaysOfWeek,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
