package nutrient

import (
	"Nutriplan-Backend/domain"
	"Nutriplan-Backend/entities"
	"Nutriplan-Backend/pkg/usda"
	"context"

	"github.com/gofiber/fiber/v2/log"
)

type (
	NutrientService interface {
		GetCatalog(ctx context.Context) ([]domain.Nutrient, error)
	}

	nutrientService struct {
		nutrientRepository NutrientRepository
		usdaClient         usda.USDAClient
	}
)

func NewNutrientService(nutrientRepository NutrientRepository, usdaClient usda.USDAClient) NutrientService {
	return &nutrientService{
		nutrientRepository: nutrientRepository,
		usdaClient:         usdaClient,
	}
}

// GetCatalog answers from the local table when it has rows. Otherwise it
// seeds the table from USDA and returns the fetched list, so a read can
// write. Numbers already stored are skipped; any other insert failure is
// returned.
func (s *nutrientService) GetCatalog(ctx context.Context) ([]domain.Nutrient, error) {
	local, err := s.nutrientRepository.GetNutrients(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	if len(local) > 0 {
		res := make([]domain.Nutrient, 0, len(local))
		for _, n := range local {
			res = append(res, domain.Nutrient{
				ID:       n.ID,
				Number:   n.Number,
				Name:     n.Name,
				UnitName: n.UnitName,
			})
		}
		return res, nil
	}

	fetched, err := s.usdaClient.GetNutrients(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Nutrient, 0, len(fetched))
	rows := make([]*entities.NutrientDefinition, 0, len(fetched))
	for _, n := range fetched {
		res = append(res, domain.Nutrient{
			Number:   n.Number.String(),
			Name:     n.Name,
			UnitName: n.UnitName,
		})
		rows = append(rows, &entities.NutrientDefinition{
			Number:   n.Number.String(),
			Name:     n.Name,
			UnitName: n.UnitName,
		})
	}

	if err := s.nutrientRepository.CreateNutrients(ctx, rows); err != nil {
		log.Errorf("failed to cache %d nutrients: %v", len(rows), err)
		return nil, domain.StorageError(err)
	}

	return res, nil
}
