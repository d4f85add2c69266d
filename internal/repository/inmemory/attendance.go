package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guardian-payroll/backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance
	// byKey indexes record IDs by the (employee, date, shift) uniqueness key.
	byKey map[string]string
}

func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepository{
		records: make(map[string]attendance.Attendance),
		byKey:   make(map[string]string),
	}
}

func compositeKey(employeeID string, date time.Time, shift attendance.Shift) string {
	return fmt.Sprintf("%s|%s|%s", employeeID, date.Format(attendance.DateLayout), shift)
}

func (r *attendanceRepository) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := compositeKey(att.EmployeeID, att.Date, att.Shift)

	if existingID, ok := r.byKey[key]; ok {
		existing := r.records[existingID]
		att.ID = existing.ID
		att.CreatedAt = existing.CreatedAt
	} else {
		att.ID = uuid.NewString()
		att.CreatedAt = now
		r.byKey[key] = att.ID
	}
	att.UpdatedAt = now

	r.records[att.ID] = att
	return att, nil
}

func (r *attendanceRepository) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	att, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *attendanceRepository) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []attendance.Attendance
	for _, att := range r.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.From != nil && att.DateKey() < filter.From.Format(attendance.DateLayout) {
			continue
		}
		if filter.To != nil && att.DateKey() > filter.To.Format(attendance.DateLayout) {
			continue
		}
		records = append(records, att)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		if records[i].EmployeeID != records[j].EmployeeID {
			return records[i].EmployeeID < records[j].EmployeeID
		}
		return records[i].Shift < records[j].Shift
	})
	return records, nil
}

func (r *attendanceRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	return r.List(ctx, attendance.ListFilter{From: &from, To: &to})
}

func (r *attendanceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(r.byKey, compositeKey(att.EmployeeID, att.Date, att.Shift))
	delete(r.records, id)
	return nil
}
