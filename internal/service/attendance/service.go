package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/guardian-payroll/backend-go/internal/domain/attendance"
	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/domain/location"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	locationRepo   location.LocationRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		locationRepo:   locationRepo,
	}
}

func (s *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, err
	}

	if req.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *req.LocationID); err != nil {
			if errors.Is(err, location.ErrLocationNotFound) {
				return attendance.AttendanceResponse{}, attendance.ErrLocationNotFound
			}
			return attendance.AttendanceResponse{}, err
		}
	}

	date, err := time.Parse(attendance.DateLayout, req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	upserted, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		Shift:         attendance.Shift(req.Shift),
		Status:        attendance.Status(req.Status),
		LocationID:    req.LocationID,
		Notes:         req.Notes,
		PhotoEvidence: req.PhotoEvidence,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(upserted), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.ToResponse(rec))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}
