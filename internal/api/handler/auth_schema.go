package handler

import "github.com/mywallet/wallet-system/internal/api/sanitize"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type signUpRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// sanitize strips markup from every field before validation, so a payload
// that is nothing but tags fails the required checks.
func (r *signUpRequest) sanitize() {
	r.Name = sanitize.Strip(r.Name)
	r.Email = sanitize.Strip(r.Email)
	r.Password = sanitize.Strip(r.Password)
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *signInRequest) sanitize() {
	r.Email = sanitize.Strip(r.Email)
	r.Password = sanitize.Strip(r.Password)
}
