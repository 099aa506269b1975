// Package payload declares the JSON request and response bodies of the HTTP API.
package payload

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginRequest validates presence only: a malformed email must fall through
// to the credential check so the response stays indistinguishable from a
// wrong password.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Msg string `json:"msg"`
}
