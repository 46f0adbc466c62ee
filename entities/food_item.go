package entities

import (
	"github.com/google/uuid"
	"time"
)

// FoodItem is a USDA food stored locally, keyed by its fdcId.
type FoodItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FdcID           string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"fdc_id"`
	Description     string    `gorm:"not null" json:"description"`
	DataType        string    `json:"data_type"`
	PublicationDate time.Time `gorm:"type:timestamp" json:"publication_date"`
	BrandOwner      *string   `json:"brand_owner,omitempty"`
	GtinUpc         *string   `json:"gtin_upc,omitempty"`
	Ingredients     *string   `gorm:"type:text" json:"ingredients,omitempty"`
	ServingSize     *float64  `json:"serving_size,omitempty"`
	ServingSizeUnit *string   `json:"serving_size_unit,omitempty"`
	NutritionData   string    `gorm:"type:text" json:"nutrition_data"`

	FoodNutrients []*NutrientAmount `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// NutrientDefinition is static USDA reference data, unique by sequence number.
type NutrientDefinition struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Number   string `gorm:"type:varchar(16);uniqueIndex;not null" json:"number"`
	Name     string `json:"name"`
	UnitName string `json:"unit_name"`
}

type NutrientAmount struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FoodItemID uuid.UUID `gorm:"type:uuid;index;not null" json:"food_item_id"`
	NutrientID uint      `gorm:"index;not null" json:"nutrient_id"`
	Amount     float64   `json:"amount"`

	Nutrient *NutrientDefinition `gorm:"foreignKey:NutrientID"`
}
