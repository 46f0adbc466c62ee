package food

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/entities"
	"Nutriplan-Backend/internal/utils"
	"Nutriplan-Backend/pkg/usda"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		ResolveFoodItem(ctx context.Context, fdcID string) (domain.FoodItem, error)
		SearchFoods(ctx context.Context, req domain.FoodSearchRequest) (domain.FoodSearchResult, error)
		IngestFoodItem(ctx context.Context, req domain.IngestFoodItemRequest) (domain.FoodItem, error)
	}

	foodService struct {
		foodRepository FoodRepository
		usdaClient     usda.USDAClient
		validator      *validator.Validate
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository, usdaClient usda.USDAClient, validator *validator.Validate) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		usdaClient:     usdaClient,
		validator:      validator,
		now:            time.Now,
	}
}

// ResolveFoodItem answers from the local store when the fdcId is known and
// falls back to USDA otherwise. The fetched record is not persisted; only
// IngestFoodItem writes.
func (s *foodService) ResolveFoodItem(ctx context.Context, fdcID string) (domain.FoodItem, error) {
	fdcID = strings.TrimSpace(fdcID)
	if fdcID == "" {
		return domain.FoodItem{}, domain.NewValidationError("fdcId", "required")
	}

	local, err := s.foodRepository.GetFoodItemByFdcID(ctx, fdcID)
	if err == nil {
		return FromLocal(local), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FoodItem{}, domain.StorageError(err)
	}

	food, err := s.usdaClient.GetFood(ctx, fdcID)
	if err != nil {
		return domain.FoodItem{}, err
	}
	return FromUpstream(food), nil
}

// SearchFoods always goes to USDA. The page is forwarded as is; a page past
// the end simply comes back empty.
func (s *foodService) SearchFoods(ctx context.Context, req domain.FoodSearchRequest) (domain.FoodSearchResult, error) {
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.FoodSearchResult{}, err
	}

	res, err := s.usdaClient.SearchFoods(ctx, usda.SearchParams{
		Query:      req.Query,
		PageSize:   req.PageSize,
		PageNumber: req.Page,
		DataTypes:  domain.SearchDataTypes,
	})
	if err != nil {
		return domain.FoodSearchResult{}, err
	}

	foods := make([]domain.FoodSummary, 0, len(res.Foods))
	for _, f := range res.Foods {
		foods = append(foods, SummaryFromUpstream(f))
	}

	return domain.FoodSearchResult{
		Foods:       foods,
		TotalCount:  res.TotalHits,
		CurrentPage: req.Page,
		TotalPages:  domain.TotalPages(res.TotalHits, req.PageSize),
	}, nil
}

// IngestFoodItem stores a new food item. An fdcId that is already stored,
// whether found up front or rejected by the unique index, yields a
// *domain.ConflictError carrying the stored record.
func (s *foodService) IngestFoodItem(ctx context.Context, req domain.IngestFoodItemRequest) (domain.FoodItem, error) {
	req.Description = strings.TrimSpace(req.Description)
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.FoodItem{}, err
	}
	fdcID := req.FdcID.String()

	existing, err := s.foodRepository.GetFoodItemByFdcID(ctx, fdcID)
	if err == nil {
		return domain.FoodItem{}, &domain.ConflictError{Existing: FromLocal(existing)}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FoodItem{}, domain.StorageError(err)
	}

	nutritionData := "{}"
	if len(req.NutritionData) > 0 {
		b, err := json.Marshal(req.NutritionData)
		if err != nil {
			return domain.FoodItem{}, domain.NewValidationError("nutritionData", "json")
		}
		nutritionData = string(b)
	}

	foodItem := &entities.FoodItem{
		FdcID:           fdcID,
		Description:     req.Description,
		DataType:        req.DataType,
		PublicationDate: s.now().UTC(),
		BrandOwner:      req.BrandOwner,
		GtinUpc:         req.GtinUpc,
		Ingredients:     req.Ingredients,
		ServingSize:     req.ServingSize,
		ServingSizeUnit: req.ServingSizeUnit,
		NutritionData:   nutritionData,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		if errors.Is(err, domain.ErrFoodItemExists) {
			log.Infof("concurrent ingestion of fdcId %s lost the insert race", fdcID)
			return s.conflictWithStored(ctx, fdcID)
		}
		return domain.FoodItem{}, domain.StorageError(err)
	}

	return FromLocal(foodItem), nil
}

func (s *foodService) conflictWithStored(ctx context.Context, fdcID string) (domain.FoodItem, error) {
	stored, err := s.foodRepository.GetFoodItemByFdcID(ctx, fdcID)
	if err != nil {
		return domain.FoodItem{}, &domain.ConflictError{Existing: domain.FoodItem{FdcID: fdcID, Nutrients: []domain.FoodNutrient{}}}
	}
	return domain.FoodItem{}, &domain.ConflictError{Existing: FromLocal(stored)}
}
