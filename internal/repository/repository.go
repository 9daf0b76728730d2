package repository

import (
	"context"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
)

var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError distinguishes repository-layer errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository persists workouts. Every operation is scoped to a single
// owner; nothing crosses owner boundaries.
type WorkoutRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.Workout, error)
	Create(ctx context.Context, userID string, workout domain.Workout) (domain.Workout, error)
	// Upsert updates the (id, owner) row, or inserts a new row under the
	// caller-supplied id when no such row exists. The miss-then-insert path
	// is the documented update semantics, not an error.
	Upsert(ctx context.Context, id, userID string, workout domain.Workout) (domain.Workout, error)
	// Delete removes the (id, owner) row. Deleting an absent or non-owned
	// id affects zero rows and is still success.
	Delete(ctx context.Context, id, userID string) error
}

// MealPlanRepository persists meal plans with the same owner scoping and
// upsert semantics as workouts.
type MealPlanRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.MealPlan, error)
	Create(ctx context.Context, userID string, plan domain.MealPlan) (domain.MealPlan, error)
	Upsert(ctx context.Context, id, userID string, plan domain.MealPlan) (domain.MealPlan, error)
	Delete(ctx context.Context, id, userID string) error
}

// ScheduleRepository persists workout schedules. Schedules are created and
// deleted, never updated in place.
type ScheduleRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.WorkoutSchedule, error)
	Create(ctx context.Context, userID string, schedule domain.WorkoutSchedule) (domain.WorkoutSchedule, error)
	Delete(ctx context.Context, id, userID string) error
}

// UserRepository persists local-mode accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
