package handler

// errorResponse is the standard error envelope returned on 4xx/5xx.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the standard success envelope.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse keeps the wire contract of the original boundary:
// user_id is null on a failed login.
type loginResponse struct {
	Message  string  `json:"message"`
	UserID   *string `json:"user_id"`
	Username string  `json:"username,omitempty"`
	Email    string  `json:"email,omitempty"`
	Token    string  `json:"token,omitempty"`
}
