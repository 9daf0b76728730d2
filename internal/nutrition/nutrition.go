// Package nutrition computes aggregate nutrition totals for meal plans.
package nutrition

import (
	"math"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
)

// MealItem pairs a catalog food with a quantity measured in servings of that
// food's declared serving size.
type MealItem struct {
	Food     domain.FoodItem `json:"food"`
	Quantity float64         `json:"quantity"`
}

// Meal is the aggregation input: a named meal with its items.
type Meal struct {
	Name  string     `json:"name,omitempty"`
	Items []MealItem `json:"items"`
}

// Total sums the nutrition of every item across every meal. Each item
// contributes quantity x (servingSize / 100) of its per-100g values. The
// accumulation stays in floating point; rounding happens once, half-up, on
// the final total of each field. An empty meal list yields the zero vector.
func Total(meals []Meal) domain.Nutrition {
	var calories, protein, carbs, fat float64
	for _, meal := range meals {
		for _, item := range meal.Items {
			multiplier := item.Quantity * (item.Food.ServingSize / 100)
			per := item.Food.NutritionPer100g
			calories += per.Calories * multiplier
			protein += per.Protein * multiplier
			carbs += per.Carbs * multiplier
			fat += per.Fat * multiplier
		}
	}
	return domain.Nutrition{
		Calories: roundHalfUp(calories),
		Protein:  roundHalfUp(protein),
		Carbs:    roundHalfUp(carbs),
		Fat:      roundHalfUp(fat),
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
