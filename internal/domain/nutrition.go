package domain

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// Nutrition is the macro block shared by foods, meals and plan totals.
type Nutrition struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}

// UnmarshalJSON accepts numbers or numeric strings for each field. Clients
// and the coach model are not consistent about quoting numeric values, so
// every field goes through coercion. A value that cannot be coerced is a
// hard error before anything reaches persistence.
func (n *Nutrition) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fields := map[string]*float64{
		"calories": &n.Calories,
		"protein":  &n.Protein,
		"carbs":    &n.Carbs,
		"fat":      &n.Fat,
	}
	for key, dst := range fields {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return fmt.Errorf("nutrition field %q: %w", key, err)
		}
		*dst = f
	}
	return nil
}
