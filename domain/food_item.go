package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

const (
	DataTypeSurvey     = "Survey (FNDDS)"
	DataTypeFoundation = "Foundation"
	DataTypeLegacy     = "SR Legacy"
	DataTypeBranded    = "Branded"

	OpFetchFood      = "fetch food"
	OpSearchFoods    = "search foods"
	OpFetchNutrients = "fetch nutrients"
)

// SearchDataTypes is the default allow-list sent with every search. Branded
// entries are left out on purpose.
var SearchDataTypes = []string{DataTypeSurvey, DataTypeFoundation, DataTypeLegacy}

var (
	MessageSuccessGetFoodItem    = "food item retrieved successfully"
	MessageSuccessSearchFoods    = "foods retrieved successfully"
	MessageSuccessIngestFoodItem = "food item added to database successfully"

	MessageFailedGetFoodItem    = "failed to fetch food details"
	MessageFailedSearchFoods    = "failed to fetch foods"
	MessageFailedIngestFoodItem = "failed to add food to database"
	MessageFoodItemExists       = "food item already exists in database"

	ErrFoodItemNotFound = errors.New("food item not found")
	ErrFoodItemExists   = errors.New("food item already exists")
	ErrSearchFailed     = errors.New("food search failed")
)

func IsDataType(s string) bool {
	switch s {
	case DataTypeSurvey, DataTypeFoundation, DataTypeLegacy, DataTypeBranded:
		return true
	}
	return false
}

// FlexString accepts a JSON string or number and keeps its string form.
// fdcId arrives as a number from USDA and often as a string from clients.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

type (
	FoodNutrient struct {
		ID       int64   `json:"id"`
		Number   string  `json:"number"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		UnitName string  `json:"unitName"`
	}

	// FoodItem is the one shape returned for a food, whether it came from
	// the local store or from USDA.
	FoodItem struct {
		FdcID           string         `json:"fdcId"`
		Description     string         `json:"description"`
		DataType        string         `json:"dataType"`
		PublicationDate string         `json:"publicationDate,omitempty"`
		BrandOwner      *string        `json:"brandOwner,omitempty"`
		GtinUpc         *string        `json:"gtinUpc,omitempty"`
		Ingredients     *string        `json:"ingredients,omitempty"`
		ServingSize     *float64       `json:"servingSize,omitempty"`
		ServingSizeUnit *string        `json:"servingSizeUnit,omitempty"`
		Nutrients       []FoodNutrient `json:"nutrients"`
		NutritionData   map[string]any `json:"nutritionData,omitempty"`
	}

	FoodSummary struct {
		FdcID       string  `json:"fdcId"`
		Description string  `json:"description"`
		DataType    string  `json:"dataType"`
		BrandOwner  *string `json:"brandOwner,omitempty"`
	}

	FoodSearchRequest struct {
		Query    string `query:"search"`
		Page     int    `query:"page" validate:"min=1"`
		PageSize int    `query:"limit" validate:"min=1"`
	}

	FoodSearchResult struct {
		Foods       []FoodSummary `json:"foods"`
		TotalCount  int           `json:"totalCount"`
		CurrentPage int           `json:"currentPage"`
		TotalPages  int           `json:"totalPages"`
	}

	IngestFoodItemRequest struct {
		FdcID           FlexString     `json:"fdcId" validate:"required,max=32"`
		Description     string         `json:"description" validate:"required"`
		DataType        string         `json:"dataType" validate:"omitempty,food_data_type"`
		BrandOwner      *string        `json:"brandOwner"`
		GtinUpc         *string        `json:"gtinUpc"`
		Ingredients     *string        `json:"ingredients"`
		ServingSize     *float64       `json:"servingSize" validate:"omitempty,gte=0"`
		ServingSizeUnit *string        `json:"servingSizeUnit"`
		NutritionData   map[string]any `json:"nutritionData"`
	}
)

// TotalPages is ceil(total / pageSize); a non-positive page size yields 0.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
