package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guardian-payroll/backend-go/internal/domain/location"
)

type locationRepository struct {
	mu        sync.RWMutex
	locations map[string]location.WorkLocation
}

func NewLocationRepository() location.LocationRepository {
	return &locationRepository{locations: make(map[string]location.WorkLocation)}
}

func (r *locationRepository) Create(_ context.Context, loc location.WorkLocation) (location.WorkLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.locations {
		if strings.EqualFold(existing.Name, loc.Name) {
			return location.WorkLocation{}, location.ErrLocationNameExists
		}
	}

	now := time.Now()
	loc.ID = uuid.NewString()
	loc.CreatedAt = now
	loc.UpdatedAt = now
	r.locations[loc.ID] = loc
	return loc, nil
}

func (r *locationRepository) GetByID(_ context.Context, id string) (location.WorkLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.locations[id]
	if !ok {
		return location.WorkLocation{}, location.ErrLocationNotFound
	}
	return loc, nil
}

func (r *locationRepository) List(_ context.Context) ([]location.WorkLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locations := make([]location.WorkLocation, 0, len(r.locations))
	for _, loc := range r.locations {
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Name < locations[j].Name
	})
	return locations, nil
}

func (r *locationRepository) Update(_ context.Context, loc location.WorkLocation) (location.WorkLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.locations[loc.ID]
	if !ok {
		return location.WorkLocation{}, location.ErrLocationNotFound
	}

	for id, other := range r.locations {
		if id != loc.ID && strings.EqualFold(other.Name, loc.Name) {
			return location.WorkLocation{}, location.ErrLocationNameExists
		}
	}

	loc.CreatedAt = existing.CreatedAt
	loc.UpdatedAt = time.Now()
	r.locations[loc.ID] = loc
	return loc, nil
}

func (r *locationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[id]; !ok {
		return location.ErrLocationNotFound
	}
	delete(r.locations, id)
	return nil
}
