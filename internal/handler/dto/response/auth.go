package response

type LoginResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	Role string `json:"role"`
}
