package account

import (
	"github.com/google/uuid"
)

type (
	Account struct {
		ID                 uuid.UUID `json:"id"`
		Identification     string    `json:"identification"`
		IdentificationType string    `json:"identification_type"`
		Name               string    `json:"name"`
		Lastname           string    `json:"lastname"`
		Type               string    `json:"type"`
		Active             bool      `json:"active"`
	}
	Accounts     []Account
	ResponseData struct {
		Data Accounts `json:"data"`
	}
)
