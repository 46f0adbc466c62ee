package food

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/entities"
	"Nutriplan-Backend/internal/testutil"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFoodRepositoryPreloadsNutrients(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()

	protein := &entities.NutrientDefinition{Number: "203", Name: "Protein", UnitName: "G"}
	fat := &entities.NutrientDefinition{Number: "204", Name: "Total lipid (fat)", UnitName: "G"}
	require.NoError(t, db.Create([]*entities.NutrientDefinition{protein, fat}).Error)

	item := &entities.FoodItem{
		FdcID:           "171705",
		Description:     "Avocados, raw",
		DataType:        domain.DataTypeLegacy,
		PublicationDate: time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC),
		NutritionData:   "{}",
	}
	require.NoError(t, repo.AddFoodItem(ctx, item))
	require.NoError(t, db.Create([]*entities.NutrientAmount{
		{FoodItemID: item.ID, NutrientID: protein.ID, Amount: 2},
		{FoodItemID: item.ID, NutrientID: fat.ID, Amount: 14.7},
	}).Error)

	got, err := repo.GetFoodItemByFdcID(ctx, "171705")
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	require.Len(t, got.FoodNutrients, 2)
	require.NotNil(t, got.FoodNutrients[0].Nutrient)
	assert.Equal(t, "Protein", got.FoodNutrients[0].Nutrient.Name)
	assert.Equal(t, 14.7, got.FoodNutrients[1].Amount)
	assert.Equal(t, "204", got.FoodNutrients[1].Nutrient.Number)
}

func TestFoodRepositoryMiss(t *testing.T) {
	repo := NewFoodRepository(testutil.NewTestDB(t))

	_, err := repo.GetFoodItemByFdcID(context.Background(), "0")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFoodRepositoryDuplicateFdcID(t *testing.T) {
	repo := NewFoodRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddFoodItem(ctx, &entities.FoodItem{FdcID: "1", Description: "first"}))
	err := repo.AddFoodItem(ctx, &entities.FoodItem{FdcID: "1", Description: "second"})
	assert.ErrorIs(t, err, domain.ErrFoodItemExists)

	got, err := repo.GetFoodItemByFdcID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Description)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
}
