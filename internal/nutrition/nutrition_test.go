package nutrition

import (
	"math/rand"
	"testing"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
)

func food(servingSize float64, n domain.Nutrition) domain.FoodItem {
	return domain.FoodItem{ServingSize: servingSize, NutritionPer100g: n}
}

func TestTotal_Empty(t *testing.T) {
	want := domain.Nutrition{}
	if got := Total(nil); got != want {
		t.Errorf("Total(nil) = %+v, want zero vector", got)
	}
	if got := Total([]Meal{}); got != want {
		t.Errorf("Total([]) = %+v, want zero vector", got)
	}
	if got := Total([]Meal{{Name: "lunch"}}); got != want {
		t.Errorf("Total(meal without items) = %+v, want zero vector", got)
	}
}

func TestTotal_KnownValues(t *testing.T) {
	// 150g chicken breast + 2 tbsp (15ml each) olive oil.
	chicken := food(100, domain.Nutrition{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6})
	oil := food(15, domain.Nutrition{Calories: 884, Protein: 0, Carbs: 0, Fat: 100})

	meals := []Meal{
		{Name: "lunch", Items: []MealItem{
			{Food: chicken, Quantity: 1.5},
			{Food: oil, Quantity: 2},
		}},
	}

	got := Total(meals)
	// chicken: 1.5 * 1.00 => 247.5 cal, 46.5 protein, 5.4 fat
	// oil: 2 * 0.15 => 265.2 cal, 30 fat
	want := domain.Nutrition{Calories: 513, Protein: 47, Carbs: 0, Fat: 35}
	if got != want {
		t.Errorf("Total = %+v, want %+v", got, want)
	}
}

func TestTotal_RoundsOnlyAtTheEnd(t *testing.T) {
	// Each meal contributes 0.4 of every field. Rounding per meal would give
	// 0; rounding the accumulated 0.8 gives 1.
	tiny := food(100, domain.Nutrition{Calories: 0.4, Protein: 0.4, Carbs: 0.4, Fat: 0.4})
	meals := []Meal{
		{Items: []MealItem{{Food: tiny, Quantity: 1}}},
		{Items: []MealItem{{Food: tiny, Quantity: 1}}},
	}

	got := Total(meals)
	want := domain.Nutrition{Calories: 1, Protein: 1, Carbs: 1, Fat: 1}
	if got != want {
		t.Errorf("Total = %+v, want %+v (rounded once at the top level)", got, want)
	}
}

func TestTotal_HalfRoundsUp(t *testing.T) {
	half := food(100, domain.Nutrition{Calories: 0.5})
	got := Total([]Meal{{Items: []MealItem{{Food: half, Quantity: 1}}}})
	if got.Calories != 1 {
		t.Errorf("Calories = %v, want 1 (half rounds up)", got.Calories)
	}
}

func TestTotal_PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Dyadic values only (multiples of 0.25, serving sizes multiples of 25)
	// so every product and sum is exact and reordering cannot move a result
	// across a rounding boundary.
	var meals []Meal
	for i := 0; i < 5; i++ {
		var items []MealItem
		for j := 0; j < 4; j++ {
			items = append(items, MealItem{
				Food: food(float64(25*(1+rng.Intn(8))), domain.Nutrition{
					Calories: float64(rng.Intn(3600)) * 0.25,
					Protein:  float64(rng.Intn(160)) * 0.25,
					Carbs:    float64(rng.Intn(320)) * 0.25,
					Fat:      float64(rng.Intn(400)) * 0.25,
				}),
				Quantity: float64(1+rng.Intn(8)) * 0.25,
			})
		}
		meals = append(meals, Meal{Items: items})
	}

	want := Total(meals)
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Meal, len(meals))
		copy(shuffled, meals)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		for i := range shuffled {
			items := make([]MealItem, len(shuffled[i].Items))
			copy(items, shuffled[i].Items)
			rng.Shuffle(len(items), func(a, b int) { items[a], items[b] = items[b], items[a] })
			shuffled[i].Items = items
		}
		if got := Total(shuffled); got != want {
			t.Fatalf("trial %d: Total changed under permutation: got %+v, want %+v", trial, got, want)
		}
	}
}
