package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the task-workflow payload shape ({"detail": ...}).
type DetailResponse struct {
	Detail string `json:"detail"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
}
