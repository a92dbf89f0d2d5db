package changelog

import (
	"context"

	domain "account-manager-api/internal/domain/changelog"
	"account-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

// FetchEntries joins each record against the users table twice, so the
// names reflect the rows as they are now, not as they were at write time.
func (r *Repository) FetchEntries(ctx context.Context) (domain.Entries, error) {
	rows, err := r.db.Query(ctx, SelectEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var es Entries
	for rows.Next() {
		e := new(Entry)

		if err = rows.Scan(
			&e.Datetime,
			&e.ChangeType,
			&e.ModificatedName,
			&e.ModificatedLastname,
			&e.ModificatorName,
			&e.ModificatorLastname,
		); err != nil {
			return nil, err
		}

		es = append(es, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&es), nil
}
