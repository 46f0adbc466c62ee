package usda

import "Nutriplan-Backend/domain"

type (
	// NutrientInfo is the nested nutrient definition inside a food record.
	NutrientInfo struct {
		ID       int64             `json:"id"`
		Number   domain.FlexString `json:"number"`
		Name     string            `json:"name"`
		UnitName string            `json:"unitName"`
	}

	FoodNutrient struct {
		ID       int64        `json:"id"`
		Amount   float64      `json:"amount"`
		Nutrient NutrientInfo `json:"nutrient"`
	}

	Food struct {
		FdcID           domain.FlexString `json:"fdcId"`
		Description     string            `json:"description"`
		DataType        string            `json:"dataType"`
		PublicationDate string            `json:"publicationDate"`
		BrandOwner      *string           `json:"brandOwner"`
		GtinUpc         *string           `json:"gtinUpc"`
		Ingredients     *string           `json:"ingredients"`
		ServingSize     *float64          `json:"servingSize"`
		ServingSizeUnit *string           `json:"servingSizeUnit"`
		FoodNutrients   []FoodNutrient    `json:"foodNutrients"`
	}

	SearchFood struct {
		FdcID       domain.FlexString `json:"fdcId"`
		Description string            `json:"description"`
		DataType    string            `json:"dataType"`
		BrandOwner  *string           `json:"brandOwner"`
	}

	SearchResult struct {
		Foods       []SearchFood `json:"foods"`
		TotalHits   int          `json:"totalHits"`
		CurrentPage int          `json:"currentPage"`
		TotalPages  int          `json:"totalPages"`
	}

	SearchParams struct {
		Query      string
		PageSize   int
		PageNumber int
		DataTypes  []string
	}

	// Nutrient is one entry of the flat nutrient catalog.
	Nutrient struct {
		Number   domain.FlexString `json:"number"`
		Name     string            `json:"name"`
		UnitName string            `json:"unitName"`
	}
)
