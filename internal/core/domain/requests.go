package domain

// CredentialsRequest is the JSON body for registration and login.
// Field presence is checked by the logic layer so the endpoints can
// report their contract-specific status codes for missing fields.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the success body for POST /customer/login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MessageResponse is the generic {message} body used by every other
// endpoint outcome.
type MessageResponse struct {
	Message string `json:"message"`
}
