package location

import "errors"

var (
	ErrLocationNotFound   = errors.New("work location not found")
	ErrLocationNameExists = errors.New("work location name already exists")
)
