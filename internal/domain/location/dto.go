package location

import "github.com/guardian-payroll/backend-go/internal/pkg/validator"

type CreateLocationRequest struct {
	Name string `json:"name"`
}

func (r *CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLocationRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

func (r *UpdateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToResponse(l WorkLocation) LocationResponse {
	return LocationResponse{ID: l.ID, Name: l.Name}
}
