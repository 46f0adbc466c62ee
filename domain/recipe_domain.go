package domain

import (
	"encoding/json"
	"errors"
	"sort"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoRecipes      = errors.New("no recipes found in database")
)

// Keys of a recipe nutrition blob that are surfaced as top-level figures.
// Everything else in the blob is extended detail.
const (
	NutritionKeyCalories = "calories"
	NutritionKeyProtein  = "protein"
	NutritionKeyCarbs    = "carbs"
	NutritionKeyFat      = "fat"

	DefaultNutrientUnit = "g"
)

type (
	NutrientAmount struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}

	NutritionInfo struct {
		Calories  float64          `json:"calories"`
		Protein   float64          `json:"protein"`
		Carbs     float64          `json:"carbs"`
		Fat       float64          `json:"fat"`
		Nutrients []NutrientAmount `json:"nutrients"`
	}
)

// ParseNutritionInfo reads a recipe nutrition blob. Non-numeric values are
// ignored; extra keys are returned sorted by name. An empty blob is not an
// error.
func ParseNutritionInfo(blob string) (NutritionInfo, error) {
	info := NutritionInfo{Nutrients: []NutrientAmount{}}
	if blob == "" {
		return info, nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return info, err
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, ok := raw[k].(float64)
		if !ok {
			continue
		}
		switch k {
		case NutritionKeyCalories:
			info.Calories = v
		case NutritionKeyProtein:
			info.Protein = v
		case NutritionKeyCarbs:
			info.Carbs = v
		case NutritionKeyFat:
			info.Fat = v
		default:
			info.Nutrients = append(info.Nutrients, NutrientAmount{
				Name:   k,
				Amount: v,
				Unit:   DefaultNutrientUnit,
			})
		}
	}
	return info, nil
}
