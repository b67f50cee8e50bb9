package request_models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Password string `json:"password"`
	// Invitation code consumed on signup while the beta gate is up.
	BetaCode string `json:"code"`
}
