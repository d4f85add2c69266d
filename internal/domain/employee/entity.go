package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	// ShiftRate is the pay owed for one completed 12-hour shift.
	ShiftRate decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Role string

const (
	RoleGuardia     Role = "Guardia"
	RoleSupervisor  Role = "Supervisor de Seguridad"
	RoleCoordinador Role = "Coordinador de Seguridad"
	RoleDirector    Role = "Director de Seguridad"
)

// Roles lists every valid role, ordered from least to most privileged.
var Roles = []Role{RoleGuardia, RoleSupervisor, RoleCoordinador, RoleDirector}

func (r Role) Valid() bool {
	switch r {
	case RoleGuardia, RoleSupervisor, RoleCoordinador, RoleDirector:
		return true
	}
	return false
}
