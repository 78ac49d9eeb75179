// File: services/region/service.go
package region

import (
	"context"
	"fmt"

	regionRepo "fairway/database/repository/region"
	"fairway/models"
)

// RegionService manages the country/province/city reference hierarchy.
type RegionService interface {
	CreateRegion(ctx context.Context, req models.CreateRegionRequest) (*models.Region, error)
	DeleteRegion(ctx context.Context, id string) error
	ListCountries(ctx context.Context) ([]models.Region, error)
	ListProvinces(ctx context.Context, countryID string) ([]models.Region, error)
	ListCities(ctx context.Context, provinceID string) ([]models.Region, error)
}

// DefaultRegionService is the production implementation.
type DefaultRegionService struct {
	Repo regionRepo.RegionRepository
}

// CreateRegion adds a node, checking the parent exists and is one level up.
func (s *DefaultRegionService) CreateRegion(ctx context.Context, req models.CreateRegionRequest) (*models.Region, error) {
	expectedParent := map[string]string{
		models.RegionCountry:  "",
		models.RegionProvince: models.RegionCountry,
		models.RegionCity:     models.RegionProvince,
	}
	parentKind, ok := expectedParent[req.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown region kind %q", req.Kind)
	}

	if parentKind == "" {
		if req.ParentID != "" {
			return nil, fmt.Errorf("a country cannot have a parent")
		}
	} else {
		if req.ParentID == "" {
			return nil, fmt.Errorf("a %s requires a %s parent", req.Kind, parentKind)
		}
		parent, err := s.Repo.GetByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.Kind != parentKind {
			return nil, fmt.Errorf("parent of a %s must be a %s", req.Kind, parentKind)
		}
	}

	region := &models.Region{
		Kind:     req.Kind,
		Name:     req.Name,
		ParentID: req.ParentID,
	}
	if _, err := s.Repo.Create(ctx, region); err != nil {
		return nil, err
	}
	return region, nil
}

func (s *DefaultRegionService) DeleteRegion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultRegionService) ListCountries(ctx context.Context) ([]models.Region, error) {
	return s.Repo.GetByKindAndParent(ctx, models.RegionCountry, "")
}

func (s *DefaultRegionService) ListProvinces(ctx context.Context, countryID string) ([]models.Region, error) {
	return s.Repo.GetByKindAndParent(ctx, models.RegionProvince, countryID)
}

func (s *DefaultRegionService) ListCities(ctx context.Context, provinceID string) ([]models.Region, error) {
	return s.Repo.GetByKindAndParent(ctx, models.RegionCity, provinceID)
}
