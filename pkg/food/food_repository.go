package food

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/entities"
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		// GetFoodItemByFdcID loads the item with its nutrient amounts and their
		// definitions. A miss returns gorm.ErrRecordNotFound.
		GetFoodItemByFdcID(ctx context.Context, fdcID string) (*entities.FoodItem, error)
		// AddFoodItem returns domain.ErrFoodItemExists when the fdcId unique
		// index rejects the row.
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) GetFoodItemByFdcID(ctx context.Context, fdcID string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("FoodNutrients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("FoodNutrients.Nutrient").
		Where("fdc_id = ?", fdcID).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	err := r.db.WithContext(ctx).Create(foodItem).Error
	if isUniqueViolation(err) {
		return domain.ErrFoodItemExists
	}
	return err
}

// isUniqueViolation recognises a unique index rejection from either the
// translated gorm error or the raw driver error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
