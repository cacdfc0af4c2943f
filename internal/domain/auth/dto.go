package auth

import "github.com/rcc-dimension/attendance-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	errs := validator.Required(
		[]string{"email", "password"},
		map[string]string{
			"email":    r.Email,
			"password": r.Password,
		},
	)
	if len(errs) > 0 {
		return errs
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserType string `json:"userType"`
}

type UserResponse struct {
	Email string `json:"email"`
}
