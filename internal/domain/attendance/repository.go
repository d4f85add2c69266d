package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts the record, or replaces the existing one with the
	// same (employee, date, shift) key.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Attendance, error)
	Delete(ctx context.Context, id string) error
}
