package account

import (
	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	// Account is one row of the users table. ID is generated at creation
	// and never changes; deactivation only flips Active.
	Account struct {
		ID                 UUID
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
