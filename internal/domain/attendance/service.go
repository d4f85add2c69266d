package attendance

import "context"

type AttendanceService interface {
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
