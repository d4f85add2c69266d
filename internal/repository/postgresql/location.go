package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/guardian-payroll/backend-go/internal/domain/location"
	"github.com/guardian-payroll/backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

func (r *locationRepositoryImpl) Create(ctx context.Context, loc location.WorkLocation) (location.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_locations (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at
	`

	var created location.WorkLocation
	err := q.QueryRow(ctx, query, uuid.NewString(), loc.Name).Scan(
		&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_work_location_name") {
			return location.WorkLocation{}, location.ErrLocationNameExists
		}
		return location.WorkLocation{}, fmt.Errorf("failed to create work location: %w", err)
	}

	return created, nil
}

func (r *locationRepositoryImpl) GetByID(ctx context.Context, id string) (location.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM work_locations WHERE id = $1`

	var loc location.WorkLocation
	err := q.QueryRow(ctx, query, id).Scan(&loc.ID, &loc.Name, &loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return location.WorkLocation{}, location.ErrLocationNotFound
		}
		return location.WorkLocation{}, fmt.Errorf("failed to get work location: %w", err)
	}

	return loc, nil
}

func (r *locationRepositoryImpl) List(ctx context.Context) ([]location.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM work_locations ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work locations: %w", err)
	}
	defer rows.Close()

	var locations []location.WorkLocation
	for rows.Next() {
		var loc location.WorkLocation
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

func (r *locationRepositoryImpl) Update(ctx context.Context, loc location.WorkLocation) (location.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_locations
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`

	var updated location.WorkLocation
	err := q.QueryRow(ctx, query, loc.Name, loc.ID).Scan(
		&updated.ID, &updated.Name, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return location.WorkLocation{}, location.ErrLocationNotFound
		}
		if strings.Contains(err.Error(), "uk_work_location_name") {
			return location.WorkLocation{}, location.ErrLocationNameExists
		}
		return location.WorkLocation{}, fmt.Errorf("failed to update work location: %w", err)
	}

	return updated, nil
}

func (r *locationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM work_locations WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return location.ErrLocationNotFound
		}
		return fmt.Errorf("failed to delete work location: %w", err)
	}

	return nil
}
