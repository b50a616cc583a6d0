package dto

import "account_backend/internal/platform/validation"

// UpdateUserReq represents the request body for the PUT /api/users/:id endpoint.
// Every field is optional; a nil field is left unchanged. Present fields are
// validated with the same rules as on creation.
type UpdateUserReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate checks present fields in declared order (name, email, password)
// and returns only the first violated rule.
func (r UpdateUserReq) Validate() error {
	if r.Name != nil {
		if err := validation.NotEmpty("name", *r.Name); err != nil {
			return err
		}
		if err := validation.MaxLen("name", *r.Name, 255); err != nil {
			return err
		}
	}
	if r.Email != nil {
		if err := validation.NotEmpty("email", *r.Email); err != nil {
			return err
		}
		if err := validation.Email("email", *r.Email); err != nil {
			return err
		}
	}
	if r.Password != nil {
		if err := validation.NotEmpty("password", *r.Password); err != nil {
			return err
		}
		if err := validation.MinLen("password", *r.Password, 6); err != nil {
			return err
		}
	}
	return nil
}
