package nutrient

import (
	"Nutriplan-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	NutrientRepository interface {
		GetNutrients(ctx context.Context) ([]*entities.NutrientDefinition, error)
		// CreateNutrients inserts in bulk and skips rows whose number already exists.
		CreateNutrients(ctx context.Context, nutrients []*entities.NutrientDefinition) error
	}

	nutrientRepository struct {
		db *gorm.DB
	}
)

func NewNutrientRepository(db *gorm.DB) NutrientRepository {
	return &nutrientRepository{db: db}
}

func (r *nutrientRepository) GetNutrients(ctx context.Context) ([]*entities.NutrientDefinition, error) {
	var nutrients []*entities.NutrientDefinition
	if err := r.db.WithContext(ctx).Order("id asc").Find(&nutrients).Error; err != nil {
		return nil, err
	}
	return nutrients, nil
}

func (r *nutrientRepository) CreateNutrients(ctx context.Context, nutrients []*entities.NutrientDefinition) error {
	if len(nutrients) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			DoNothing: true,
		}).
		CreateInBatches(nutrients, 200).Error
}
