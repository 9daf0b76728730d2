package domain

// ExerciseSet is an open record of per-set fields. The set vocabulary
// (weight, reps, duration, distance, completed, weightType) is owned by the
// client; the backend stores whatever fields the client tracks.
type ExerciseSet map[string]any

// ExerciseEntry is one exercise within a workout, with its ordered sets.
type ExerciseEntry struct {
	Name            string        `bson:"name" json:"name"`
	Sets            []ExerciseSet `bson:"sets" json:"sets"`
	Notes           string        `bson:"notes" json:"notes"`
	RestBetweenSets int           `bson:"restBetweenSets" json:"restBetweenSets"` // seconds
}

// Workout is the client-facing workout shape. EstimatedDuration and set
// counts are supplied by the caller, never recomputed server-side.
type Workout struct {
	ID                string          `json:"id,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Exercises         []ExerciseEntry `json:"exercises"`
	EstimatedDuration int             `json:"estimatedDuration"` // minutes
}
