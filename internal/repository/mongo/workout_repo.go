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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// ListByOwner returns every workout owned by userID.
func (r *mongoWorkoutRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Workout, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []normalize.WorkoutRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	workouts := make([]domain.Workout, len(rows))
	for i, row := range rows {
		workouts[i] = normalize.RestoreWorkout(row)
	}
	return workouts, nil
}

// Create inserts a new workout under a server-assigned id.
func (r *mongoWorkoutRepository) Create(ctx context.Context, userID string, workout domain.Workout) (domain.Workout, error) {
	if userID == "" {
		return domain.Workout{}, errors.New("workout requires an owner")
	}
	row := normalize.PrepareWorkout(workout)
	row.ID = uuid.NewString()
	row.UserID = userID
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, row); err != nil {
		return domain.Workout{}, err
	}
	return normalize.RestoreWorkout(row), nil
}

// Upsert updates the (id, owner) row. When nothing matches, because the
// record is absent or owned by someone else, the workout is inserted under
// the caller-supplied id instead of failing.
func (r *mongoWorkoutRepository) Upsert(ctx context.Context, id, userID string, workout domain.Workout) (domain.Workout, error) {
	if id == "" || userID == "" {
		return domain.Workout{}, errors.New("workout id and owner are required")
	}
	row := normalize.PrepareWorkout(workout)
	now := time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{
			"name":               row.Name,
			"description":        row.Description,
			"exercises":          row.Exercises,
			"estimated_duration": row.EstimatedDuration,
			"updated_at":         now,
		}},
	)
	if err != nil {
		return domain.Workout{}, err
	}
	if result.MatchedCount == 0 {
		row.ID = id
		row.UserID = userID
		row.CreatedAt = now
		row.UpdatedAt = now
		if _, err := r.collection.InsertOne(ctx, row); err != nil {
			return domain.Workout{}, err
		}
		return normalize.RestoreWorkout(row), nil
	}
	return r.getByID(ctx, id, userID)
}

// Delete removes the (id, owner) row. Zero deletions is success.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return errors.New("workout id and owner are required")
	}
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	return err
}

func (r *mongoWorkoutRepository) getByID(ctx context.Context, id, userID string) (domain.Workout, error) {
	var row normalize.WorkoutRow
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Workout{}, repository.ErrNotFound
		}
		return domain.Workout{}, err
	}
	return normalize.RestoreWorkout(row), nil
}

// EnsureWorkoutIndexes creates the owner index. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
}
