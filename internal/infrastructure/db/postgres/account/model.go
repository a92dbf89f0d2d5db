package account

import (
	"github.com/google/uuid"
)

type (
	Account struct {
		ID                 uuid.UUID
		Identification     string
		IdentificationType string
		Name               string
		Lastname           string
		PasswordHash       string
		Type               string
		Active             bool
	}
	Accounts []*Account
)
