package changelog

import (
	"context"
)

type Repository interface {
	FetchEntries(ctx context.Context) (Entries, error)
}
