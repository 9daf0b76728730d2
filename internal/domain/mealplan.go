package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// MealType identifies one of the six fixed meal slots in a day plan.
type MealType string

const (
	MealBreakfast      MealType = "breakfast"
	MealMorningSnack   MealType = "morning-snack"
	MealLunch          MealType = "lunch"
	MealAfternoonSnack MealType = "afternoon-snack"
	MealDinner         MealType = "dinner"
	MealEveningSnack   MealType = "evening-snack"
)

// MealTypes lists the slots in day order. Conversions between the two meal
// collection forms iterate in this order so results are deterministic.
var MealTypes = []MealType{
	MealBreakfast,
	MealMorningSnack,
	MealLunch,
	MealAfternoonSnack,
	MealDinner,
	MealEveningSnack,
}

// Valid reports whether t is one of the six known slots.
func (t MealType) Valid() bool {
	for _, known := range MealTypes {
		if t == known {
			return true
		}
	}
	return false
}

// FoodEntry is one food within a meal.
type FoodEntry struct {
	Name      string    `bson:"name" json:"name"`
	Portion   float64   `bson:"portion" json:"portion"`
	Unit      string    `bson:"unit" json:"unit"`
	Nutrition Nutrition `bson:"nutrition" json:"nutrition"`
}

// Meal is a single named meal. Type is set while the meal travels in
// sequence form and stripped when it becomes a map value in keyed form.
type Meal struct {
	Type  MealType    `bson:"type,omitempty" json:"type,omitempty"`
	Name  string      `bson:"name" json:"name"`
	Time  string      `bson:"time" json:"time"` // "HH:MM"
	Foods []FoodEntry `bson:"foods" json:"foods"`
}

// Meals is the plan's meal collection in exactly one of its two wire forms:
// an ordered sequence, or a map keyed by meal type where a nil value is an
// explicit empty-slot marker. The two forms are interchangeable through
// Sequence and Keyed; persistence always uses the sequence form.
type Meals struct {
	sequence []Meal
	keyed    map[MealType]*Meal
	isKeyed  bool
}

// SequenceMeals wraps an ordered meal list.
func SequenceMeals(meals []Meal) Meals {
	return Meals{sequence: meals}
}

// KeyedMeals wraps a slot-keyed meal map.
func KeyedMeals(meals map[MealType]*Meal) Meals {
	return Meals{keyed: meals, isKeyed: true}
}

// IsKeyed reports which form the collection currently holds.
func (m Meals) IsKeyed() bool { return m.isKeyed }

// Sequence returns the collection as an ordered list. A keyed collection is
// flattened in slot order: nil slots are skipped and each map key becomes the
// element's Type.
func (m Meals) Sequence() []Meal {
	if !m.isKeyed {
		return m.sequence
	}
	seq := make([]Meal, 0, len(m.keyed))
	for _, t := range MealTypes {
		meal, ok := m.keyed[t]
		if !ok || meal == nil {
			continue
		}
		entry := *meal
		entry.Type = t
		seq = append(seq, entry)
	}
	return seq
}

// Keyed returns the collection as a slot-keyed map with Type stripped from
// each value. Only slots present in the collection appear in the result. A
// sequence element without a meal type cannot be keyed and is an error.
func (m Meals) Keyed() (map[MealType]*Meal, error) {
	if m.isKeyed {
		keyed := make(map[MealType]*Meal, len(m.keyed))
		for t, meal := range m.keyed {
			keyed[t] = meal
		}
		return keyed, nil
	}
	keyed := make(map[MealType]*Meal, len(m.sequence))
	for i, meal := range m.sequence {
		if meal.Type == "" {
			return nil, fmt.Errorf("meal %d (%q) has no meal type", i, meal.Name)
		}
		entry := meal
		entry.Type = ""
		keyed[meal.Type] = &entry
	}
	return keyed, nil
}

// MarshalJSON emits whichever form the collection holds. An empty sequence
// marshals as [] rather than null.
func (m Meals) MarshalJSON() ([]byte, error) {
	if m.isKeyed {
		return json.Marshal(m.keyed)
	}
	if m.sequence == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.sequence)
}

// UnmarshalJSON accepts either wire form. Keyed input is validated against
// the six-slot enumeration; unknown slot names are rejected.
func (m *Meals) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = Meals{}
		return nil
	}
	switch trimmed[0] {
	case '[':
		var seq []Meal
		if err := json.Unmarshal(trimmed, &seq); err != nil {
			return err
		}
		*m = SequenceMeals(seq)
		return nil
	case '{':
		var keyed map[MealType]*Meal
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return err
		}
		for t := range keyed {
			if !t.Valid() {
				return fmt.Errorf("unknown meal type %q", t)
			}
		}
		*m = KeyedMeals(keyed)
		return nil
	}
	return fmt.Errorf("meals must be an array or an object keyed by meal type")
}

// MealPlan is the client-facing meal plan shape.
type MealPlan struct {
	ID             string     `json:"id,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Meals          Meals      `json:"meals"`
	TotalNutrition *Nutrition `json:"totalNutrition,omitempty"`
	CreatedAt      time.Time  `json:"createdAt,omitzero"`
	UpdatedAt      time.Time  `json:"updatedAt,omitzero"`
}
