package food

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/entities"
	"Nutriplan-Backend/pkg/usda"
	"encoding/json"
)

// FromLocal maps a stored food item, with its preloaded nutrient amounts,
// into the canonical shape.
func FromLocal(item *entities.FoodItem) domain.FoodItem {
	res := domain.FoodItem{
		FdcID:           item.FdcID,
		Description:     item.Description,
		DataType:        item.DataType,
		BrandOwner:      item.BrandOwner,
		GtinUpc:         item.GtinUpc,
		Ingredients:     item.Ingredients,
		ServingSize:     item.ServingSize,
		ServingSizeUnit: item.ServingSizeUnit,
		Nutrients:       make([]domain.FoodNutrient, 0, len(item.FoodNutrients)),
	}
	if !item.PublicationDate.IsZero() {
		res.PublicationDate = domain.FormatDateTime(item.PublicationDate)
	}

	for _, fn := range item.FoodNutrients {
		n := domain.FoodNutrient{
			ID:     int64(fn.ID),
			Amount: fn.Amount,
		}
		if fn.Nutrient != nil {
			n.Number = fn.Nutrient.Number
			n.Name = fn.Nutrient.Name
			n.UnitName = fn.Nutrient.UnitName
		}
		res.Nutrients = append(res.Nutrients, n)
	}

	if item.NutritionData != "" {
		var data map[string]any
		if err := json.Unmarshal([]byte(item.NutritionData), &data); err == nil && len(data) > 0 {
			res.NutritionData = data
		}
	}
	return res
}

// FromUpstream maps a USDA food record into the canonical shape. USDA nests
// the definition under each amount, so the flattening mirrors FromLocal.
func FromUpstream(food *usda.Food) domain.FoodItem {
	res := domain.FoodItem{
		FdcID:           food.FdcID.String(),
		Description:     food.Description,
		DataType:        food.DataType,
		PublicationDate: food.PublicationDate,
		BrandOwner:      food.BrandOwner,
		GtinUpc:         food.GtinUpc,
		Ingredients:     food.Ingredients,
		ServingSize:     food.ServingSize,
		ServingSizeUnit: food.ServingSizeUnit,
		Nutrients:       make([]domain.FoodNutrient, 0, len(food.FoodNutrients)),
	}

	for _, fn := range food.FoodNutrients {
		res.Nutrients = append(res.Nutrients, domain.FoodNutrient{
			ID:       fn.ID,
			Number:   fn.Nutrient.Number.String(),
			Name:     fn.Nutrient.Name,
			Amount:   fn.Amount,
			UnitName: fn.Nutrient.UnitName,
		})
	}
	return res
}

func SummaryFromUpstream(food usda.SearchFood) domain.FoodSummary {
	return domain.FoodSummary{
		FdcID:       food.FdcID.String(),
		Description: food.Description,
		DataType:    food.DataType,
		BrandOwner:  food.BrandOwner,
	}
}
