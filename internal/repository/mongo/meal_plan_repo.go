package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	"github.com/VoloBuilds/super-coach-pro/internal/normalize"
	"github.com/VoloBuilds/super-coach-pro/internal/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const mealPlanCollectionName = "meal_plans"

// mongoMealPlanRepository implements repository.MealPlanRepository.
type mongoMealPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoMealPlanRepository creates a new meal plan repository.
func NewMongoMealPlanRepository(db *mongo.Database) repository.MealPlanRepository {
	return &mongoMealPlanRepository{
		collection: db.Collection(mealPlanCollectionName),
	}
}

// ListByOwner returns every meal plan owned by userID, in domain shape with
// meals in sequence form.
func (r *mongoMealPlanRepository) ListByOwner(ctx context.Context, userID string) ([]domain.MealPlan, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []normalize.MealPlanRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	plans := make([]domain.MealPlan, len(rows))
	for i, row := range rows {
		plans[i] = normalize.RestoreMealPlan(row)
	}
	return plans, nil
}

// Create inserts a new meal plan under a server-assigned id. Keyed meal
// input is flattened to sequence form on the way in.
func (r *mongoMealPlanRepository) Create(ctx context.Context, userID string, plan domain.MealPlan) (domain.MealPlan, error) {
	if userID == "" {
		return domain.MealPlan{}, errors.New("meal plan requires an owner")
	}
	row := normalize.PrepareMealPlan(plan)
	row.ID = uuid.NewString()
	row.UserID = userID
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, row); err != nil {
		return domain.MealPlan{}, err
	}
	return normalize.RestoreMealPlan(row), nil
}

// Upsert updates the (id, owner) row, inserting under the caller-supplied id
// when nothing matches.
func (r *mongoMealPlanRepository) Upsert(ctx context.Context, id, userID string, plan domain.MealPlan) (domain.MealPlan, error) {
	if id == "" || userID == "" {
		return domain.MealPlan{}, errors.New("meal plan id and owner are required")
	}
	row := normalize.PrepareMealPlan(plan)
	now := time.Now().UTC()

	set := bson.M{
		"name":        row.Name,
		"description": row.Description,
		"meals":       row.Meals,
		"updated_at":  now,
	}
	if row.TotalNutrition != nil {
		set["total_nutrition"] = row.TotalNutrition
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": set},
	)
	if err != nil {
		return domain.MealPlan{}, err
	}
	if result.MatchedCount == 0 {
		row.ID = id
		row.UserID = userID
		row.CreatedAt = now
		row.UpdatedAt = now
		if _, err := r.collection.InsertOne(ctx, row); err != nil {
			return domain.MealPlan{}, err
		}
		return normalize.RestoreMealPlan(row), nil
	}
	return r.getByID(ctx, id, userID)
}

// Delete removes the (id, owner) row. Zero deletions is success.
func (r *mongoMealPlanRepository) Delete(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return errors.New("meal plan id and owner are required")
	}
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	return err
}

func (r *mongoMealPlanRepository) getByID(ctx context.Context, id, userID string) (domain.MealPlan, error) {
	var row normalize.MealPlanRow
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.MealPlan{}, repository.ErrNotFound
		}
		return domain.MealPlan{}, err
	}
	return normalize.RestoreMealPlan(row), nil
}

// EnsureMealPlanIndexes creates the owner index. Call during startup.
func EnsureMealPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
}
