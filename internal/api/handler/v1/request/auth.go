package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// LoginRequest carries the login-or-register credentials. Clients send
// them as query parameters, so the binding is by form tag.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Password, validation.Required),
	)
}
