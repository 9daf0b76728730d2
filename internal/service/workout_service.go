package service

import (
	"context"
	"errors"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	"github.com/VoloBuilds/super-coach-pro/internal/repository"
)

var (
	ErrMissingRecordID = errors.New("record ID is required")
)

// WorkoutService owns workout CRUD for a single authenticated user.
type WorkoutService interface {
	List(ctx context.Context, userID string) ([]domain.Workout, error)
	Create(ctx context.Context, userID string, workout domain.Workout) (domain.Workout, error)
	// Update behaves as upsert-by-id: a miss on (id, owner) inserts a new
	// record under the caller-supplied id.
	Update(ctx context.Context, userID, id string, workout domain.Workout) (domain.Workout, error)
	Delete(ctx context.Context, userID, id string) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new workout service.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) List(ctx context.Context, userID string) ([]domain.Workout, error) {
	return s.workoutRepo.ListByOwner(ctx, userID)
}

func (s *workoutService) Create(ctx context.Context, userID string, workout domain.Workout) (domain.Workout, error) {
	return s.workoutRepo.Create(ctx, userID, workout)
}

func (s *workoutService) Update(ctx context.Context, userID, id string, workout domain.Workout) (domain.Workout, error) {
	if id == "" {
		return domain.Workout{}, ErrMissingRecordID
	}
	return s.workoutRepo.Upsert(ctx, id, userID, workout)
}

func (s *workoutService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrMissingRecordID
	}
	return s.workoutRepo.Delete(ctx, id, userID)
}
