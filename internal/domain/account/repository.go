package account

import (
	"context"
)

// Repository mutations write their audit record in the same database
// transaction as the row change: either both persist or neither does.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	FetchByIdentification(ctx context.Context, identification string) (*Account, error)
	FetchActive(ctx context.Context) (Accounts, error)
	FetchInactive(ctx context.Context) (Accounts, error)
	Create(ctx context.Context, req Account, actorID UUID) (*Account, error)
	Deactivate(ctx context.Context, id UUID, actorID UUID) (*Account, error)
	Reactivate(ctx context.Context, id UUID, newPasswordHash string, actorID UUID) (*Account, error)
	UpdatePassword(ctx context.Context, id UUID, newPasswordHash string, actorID UUID) (*Account, error)
	UpdateRole(ctx context.Context, id UUID, newType string, actorID UUID) (*Account, error)
}
