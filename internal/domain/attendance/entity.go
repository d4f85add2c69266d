package attendance

import "time"

// DateLayout is the calendar-day key format used to correlate attendance
// records. It sorts correctly as a string.
const DateLayout = "2006-01-02"

// Attendance is one employee's record for one shift of one calendar day.
// At most one record exists per (EmployeeID, Date, Shift).
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Shift         Shift
	Status        Status
	LocationID    *string
	Notes         *string
	PhotoEvidence *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DateKey returns the record's calendar day in DateLayout form.
func (a Attendance) DateKey() string {
	return a.Date.Format(DateLayout)
}

type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

func (s Shift) Valid() bool {
	return s == ShiftDay || s == ShiftNight
}

type Status string

const (
	StatusAsistencia  Status = "Asistencia"
	StatusRetardo     Status = "Retardo"
	StatusFalta       Status = "Falta"
	StatusDescanso    Status = "Descanso"
	StatusIncapacidad Status = "Incapacidad"
	StatusVacaciones  Status = "Vacaciones"
	StatusEnfermedad  Status = "Enfermedad"
	StatusPermisoCS   Status = "PermisoCS"
	StatusPermisoSS   Status = "PermisoSS"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAsistencia, StatusRetardo, StatusFalta, StatusDescanso,
		StatusIncapacidad, StatusVacaciones, StatusEnfermedad,
		StatusPermisoCS, StatusPermisoSS:
		return true
	}
	return false
}
