package requests

import "strings"

type CreateUser struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone_number"`
}

// Normalize trims the email before validation.
func (r *CreateUser) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
