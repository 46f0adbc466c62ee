package domain

import "errors"

var (
	MessageSuccessGetNutrients = "nutrients retrieved successfully"
	MessageFailedGetNutrients  = "failed to fetch nutrients"

	ErrCatalogUnavailable = errors.New("nutrient catalog unavailable")
)

type Nutrient struct {
	ID       uint   `json:"id,omitempty"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}
