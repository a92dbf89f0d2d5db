package ports

import (
	"context"

	"account-manager-api/internal/domain/changelog"
)

type ChangelogService interface {
	FindEntries(ctx context.Context) (changelog.Entries, error)
}
