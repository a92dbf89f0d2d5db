package auth

type LoginRequest struct {
	Identification string `json:"identification"`
	Password       string `json:"password"`
}
