package service

import (
	"context"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	"github.com/VoloBuilds/super-coach-pro/internal/repository"
)

// MealPlanService owns meal plan CRUD for a single authenticated user.
// Plans arrive with meals in either wire form; persistence flattens to the
// sequence form and reads come back in sequence form.
type MealPlanService interface {
	List(ctx context.Context, userID string) ([]domain.MealPlan, error)
	Create(ctx context.Context, userID string, plan domain.MealPlan) (domain.MealPlan, error)
	Update(ctx context.Context, userID, id string, plan domain.MealPlan) (domain.MealPlan, error)
	Delete(ctx context.Context, userID, id string) error
}

type mealPlanService struct {
	mealPlanRepo repository.MealPlanRepository
}

// NewMealPlanService creates a new meal plan service.
func NewMealPlanService(mealPlanRepo repository.MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepo: mealPlanRepo}
}

func (s *mealPlanService) List(ctx context.Context, userID string) ([]domain.MealPlan, error) {
	return s.mealPlanRepo.ListByOwner(ctx, userID)
}

func (s *mealPlanService) Create(ctx context.Context, userID string, plan domain.MealPlan) (domain.MealPlan, error) {
	return s.mealPlanRepo.Create(ctx, userID, plan)
}

func (s *mealPlanService) Update(ctx context.Context, userID, id string, plan domain.MealPlan) (domain.MealPlan, error) {
	if id == "" {
		return domain.MealPlan{}, ErrMissingRecordID
	}
	return s.mealPlanRepo.Upsert(ctx, id, userID, plan)
}

func (s *mealPlanService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrMissingRecordID
	}
	return s.mealPlanRepo.Delete(ctx, id, userID)
}
