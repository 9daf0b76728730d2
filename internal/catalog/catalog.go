// Package catalog holds the static exercise and food libraries served to
// every client. The data is fixed at build time; there is no persistence
// behind it and no auth in front of it.
package catalog

import "github.com/VoloBuilds/super-coach-pro/internal/domain"

var exercises = []domain.CatalogExercise{
	{
		ID:                "bench-press",
		Name:              "Bench Press",
		Category:          "strength",
		Equipment:         []string{"barbell", "bench"},
		Description:       "A compound exercise that primarily targets the chest muscles",
		MuscleGroups:      []string{"chest", "shoulders", "triceps"},
		DefaultWeightType: "kg",
	},
	{
		ID:                "squat",
		Name:              "Barbell Squat",
		Category:          "strength",
		Equipment:         []string{"barbell", "squat rack"},
		Description:       "A compound lower body exercise that primarily targets the legs",
		MuscleGroups:      []string{"quadriceps", "hamstrings", "glutes", "core"},
		DefaultWeightType: "kg",
	},
	{
		ID:                "deadlift",
		Name:              "Deadlift",
		Category:          "strength",
		Equipment:         []string{"barbell"},
		Description:       "A compound exercise that targets multiple muscle groups",
		MuscleGroups:      []string{"back", "hamstrings", "glutes", "core"},
		DefaultWeightType: "kg",
	},
	{
		ID:                "pull-up",
		Name:              "Pull-up",
		Category:          "strength",
		Equipment:         []string{"pull-up bar"},
		Description:       "An upper body compound exercise",
		MuscleGroups:      []string{"back", "biceps", "shoulders"},
		DefaultWeightType: "bodyweight",
	},
	{
		ID:                "running",
		Name:              "Running",
		Category:          "cardio",
		Description:       "Cardiovascular exercise that can be done outdoors or on a treadmill",
		MuscleGroups:      []string{"legs", "core"},
		DefaultWeightType: "bodyweight",
	},
}

var foods = []domain.FoodItem{
	{
		ID: "chicken-breast", Name: "Chicken Breast", Category: "protein",
		ServingSize: 100, ServingUnit: "g",
		NutritionPer100g: domain.Nutrition{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	},
	{
		ID: "brown-rice", Name: "Brown Rice (Cooked)", Category: "carbs",
		ServingSize: 100, ServingUnit: "g",
		NutritionPer100g: domain.Nutrition{Calories: 112, Protein: 2.6, Carbs: 23, Fat: 0.9},
	},
	{
		ID: "broccoli", Name: "Broccoli", Category: "vegetables",
		ServingSize: 100, ServingUnit: "g",
		NutritionPer100g: domain.Nutrition{Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4},
	},
	{
		ID: "salmon", Name: "Salmon Fillet", Category: "protein",
		ServingSize: 100, ServingUnit: "g",
		NutritionPer100g: domain.Nutrition{Calories: 208, Protein: 22, Carbs: 0, Fat: 13},
	},
	{
		ID: "sweet-potato", Name: "Sweet Potato", Category: "carbs",
		ServingSize: 100, ServingUnit: "g",
		NutritionPer100g: domain.Nutrition{Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1},
	},
	{
		ID: "greek-yogurt", Name: "Greek Yogurt", Category: "dairy",
		ServingSize: 100, ServingUnit: "g",
		NutritionPer100g: domain.Nutrition{Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4},
	},
	{
		ID: "banana", Name: "Banana", Category: "fruits",
		ServingSize: 1, ServingUnit: "piece",
		NutritionPer100g: domain.Nutrition{Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
	},
	{
		ID: "olive-oil", Name: "Olive Oil", Category: "fats",
		ServingSize: 15, ServingUnit: "ml",
		NutritionPer100g: domain.Nutrition{Calories: 884, Protein: 0, Carbs: 0, Fat: 100},
	},
}

// Exercises returns the exercise library.
func Exercises() []domain.CatalogExercise { return exercises }

// Foods returns the food library.
func Foods() []domain.FoodItem { return foods }
