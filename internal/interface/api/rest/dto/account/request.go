package account

type (
	// Request mirrors the create payload: the identity document pair,
	// display names, the plain password and the role. Hashing happens in
	// the application service, never in the transport.
	Request struct {
		IDType   string `json:"id_type"`
		IDNumber string `json:"id_number"`
		Name     string `json:"name"`
		Lastname string `json:"lastname"`
		Password string `json:"password"`
		UserType string `json:"user_type"`
	}
	PasswordRequest struct {
		NewPassword string `json:"new_password"`
	}
	ReactivateRequest struct {
		NewPassword string `json:"new_password"`
	}
	RoleRequest struct {
		NewType string `json:"new_type"`
	}
)
