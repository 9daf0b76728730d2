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
	"go.mongodb.org/mongo-driver/mongo/options"
)

const scheduleCollectionName = "workout_schedules"

// mongoScheduleRepository implements repository.ScheduleRepository.
type mongoScheduleRepository struct {
	collection *mongo.Collection
}

// NewMongoScheduleRepository creates a new workout schedule repository.
func NewMongoScheduleRepository(db *mongo.Database) repository.ScheduleRepository {
	return &mongoScheduleRepository{
		collection: db.Collection(scheduleCollectionName),
	}
}

// ListByOwner returns every schedule owned by userID, oldest date first.
func (r *mongoScheduleRepository) ListByOwner(ctx context.Context, userID string) ([]domain.WorkoutSchedule, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []normalize.ScheduleRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	schedules := make([]domain.WorkoutSchedule, len(rows))
	for i, row := range rows {
		schedules[i] = normalize.RestoreSchedule(row)
	}
	return schedules, nil
}

// Create inserts a new schedule under a server-assigned id.
func (r *mongoScheduleRepository) Create(ctx context.Context, userID string, schedule domain.WorkoutSchedule) (domain.WorkoutSchedule, error) {
	if userID == "" {
		return domain.WorkoutSchedule{}, errors.New("schedule requires an owner")
	}
	if schedule.WorkoutID == "" {
		return domain.WorkoutSchedule{}, errors.New("schedule requires a workout id")
	}
	row := normalize.PrepareSchedule(schedule)
	row.ID = uuid.NewString()
	row.UserID = userID
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, row); err != nil {
		return domain.WorkoutSchedule{}, err
	}
	return normalize.RestoreSchedule(row), nil
}

// Delete removes the (id, owner) row. Zero deletions is success.
func (r *mongoScheduleRepository) Delete(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return errors.New("schedule id and owner are required")
	}
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	return err
}

// EnsureScheduleIndexes creates the owner+date index. Call during startup.
func EnsureScheduleIndexes(ctx context.Context, collection *mongo.Collection) {
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
	})
}
