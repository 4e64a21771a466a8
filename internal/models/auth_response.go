package models

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string  `json:"token"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// ErrorBody wraps a message in the {"error": ...} shape used by the auth
// endpoints and the middleware error handler.
func ErrorBody(message string) map[string]string {
	return map[string]string{"error": message}
}
