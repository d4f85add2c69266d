package location

import (
	"context"

	"github.com/guardian-payroll/backend-go/internal/domain/location"
)

type LocationServiceImpl struct {
	locationRepo location.LocationRepository
}

func NewLocationService(locationRepo location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{locationRepo: locationRepo}
}

func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	created, err := s.locationRepo.Create(ctx, location.WorkLocation{Name: req.Name})
	if err != nil {
		return location.LocationResponse{}, err
	}

	return location.ToResponse(created), nil
}

func (s *LocationServiceImpl) Get(ctx context.Context, id string) (location.LocationResponse, error) {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return location.ToResponse(loc), nil
}

func (s *LocationServiceImpl) List(ctx context.Context) ([]location.LocationResponse, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		result = append(result, location.ToResponse(loc))
	}
	return result, nil
}

func (s *LocationServiceImpl) Update(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	current, err := s.locationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return location.LocationResponse{}, err
	}

	current.Name = req.Name
	updated, err := s.locationRepo.Update(ctx, current)
	if err != nil {
		return location.LocationResponse{}, err
	}

	return location.ToResponse(updated), nil
}

func (s *LocationServiceImpl) Delete(ctx context.Context, id string) error {
	return s.locationRepo.Delete(ctx, id)
}
