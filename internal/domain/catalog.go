package domain

// CatalogExercise is one entry in the static exercise library.
type CatalogExercise struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Equipment         []string `json:"equipment,omitempty"`
	Description       string   `json:"description"`
	MuscleGroups      []string `json:"muscleGroups"`
	DefaultWeightType string   `json:"defaultWeightType"`
}

// FoodItem is one entry in the static food library. Nutrition values are
// declared per 100g/ml regardless of the serving size.
type FoodItem struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ServingSize      float64   `json:"servingSize"`
	ServingUnit      string    `json:"servingUnit"`
	NutritionPer100g Nutrition `json:"nutritionPer100g"`
}
