package ports

import (
	"account-manager-api/internal/domain/account"
)

type Auth interface {
	GenerateToken(a *account.Account, requestPassword string) (string, error)
}
