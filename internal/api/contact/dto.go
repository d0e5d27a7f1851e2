package contacts

import "strings"

type ContactRequest struct {
	Name    string `form:"name" validate:"required,max=100" label:"Name"`
	Email   string `form:"email" validate:"required,email,max=254" label:"Email"`
	Subject string `form:"subject" validate:"required,max=200" label:"Subject"`
	Message string `form:"message" validate:"required" label:"Message"`
}

// Normalize trims surrounding whitespace from every field; validation runs on the
// trimmed values.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}
