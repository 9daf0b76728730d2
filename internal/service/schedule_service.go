package service

import (
	"context"
	"errors"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	"github.com/VoloBuilds/super-coach-pro/internal/repository"
)

var (
	ErrInvalidRecurrence = errors.New("recurrence must be 'once' or 'weekly'")
)

// ScheduleService owns workout schedule operations. Schedules are immutable
// once created: the calendar client deletes and recreates on change.
type ScheduleService interface {
	List(ctx context.Context, userID string) ([]domain.WorkoutSchedule, error)
	Create(ctx context.Context, userID string, schedule domain.WorkoutSchedule) (domain.WorkoutSchedule, error)
	Delete(ctx context.Context, userID, id string) error
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) List(ctx context.Context, userID string) ([]domain.WorkoutSchedule, error) {
	return s.scheduleRepo.ListByOwner(ctx, userID)
}

func (s *scheduleService) Create(ctx context.Context, userID string, schedule domain.WorkoutSchedule) (domain.WorkoutSchedule, error) {
	switch schedule.Recurrence {
	case domain.RecurrenceOnce, domain.RecurrenceWeekly:
	default:
		return domain.WorkoutSchedule{}, ErrInvalidRecurrence
	}
	return s.scheduleRepo.Create(ctx, userID, schedule)
}

func (s *scheduleService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrMissingRecordID
	}
	return s.scheduleRepo.Delete(ctx, id, userID)
}
