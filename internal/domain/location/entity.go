package location

import "time"

// WorkLocation is a guarded site that attendance records can reference.
type WorkLocation struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
