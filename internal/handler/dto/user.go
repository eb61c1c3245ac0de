// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// SigninRequest represents the request body for signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a signed identity token.
// The field name is part of the wire contract.
type TokenResponse struct {
	JWT string `json:"jwt"`
}

// ErrorResponse represents an API error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
