package ports

import (
	"context"

	"account-manager-api/internal/domain/account"
)

type AccountService interface {
	FindByIdentification(ctx context.Context, identification string) (*account.Account, error)
	FindActive(ctx context.Context) (account.Accounts, error)
	FindDeactivated(ctx context.Context) (account.Accounts, error)
	CreateAccount(ctx context.Context, req account.Account, password string, actorID account.UUID) (*account.Account, error)
	DeactivateAccount(ctx context.Context, id, actorID account.UUID) (*account.Account, error)
	ReactivateAccount(ctx context.Context, id account.UUID, newPassword string, actorID account.UUID) (*account.Account, error)
	ChangePassword(ctx context.Context, id account.UUID, newPassword string, actorID account.UUID) (*account.Account, error)
	ChangeRole(ctx context.Context, id account.UUID, newType string, actorID account.UUID) (*account.Account, error)
}
