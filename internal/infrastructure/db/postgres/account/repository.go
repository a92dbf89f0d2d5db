package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "account-manager-api/internal/domain/account"
	"account-manager-api/internal/domain/changelog"
	"account-manager-api/internal/infrastructure/db/postgres"
	changelogDB "account-manager-api/internal/infrastructure/db/postgres/changelog"
)

var ErrIdentificationTaken = errors.New("identification already registered")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByIdentification(ctx context.Context, identification string) (*domain.Account, error) {
	a := new(Account)
	err := r.db.QueryRow(ctx, SelectAccountByIdentification, identification).Scan(
		&a.ID,
		&a.Name,
		&a.Lastname,
		&a.PasswordHash,
		&a.Type,
		&a.Identification,
		&a.IdentificationType,
		&a.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), err
}

func (r *Repository) FetchActive(ctx context.Context) (domain.Accounts, error) {
	return r.fetchByActivity(ctx, SelectActiveAccounts)
}

func (r *Repository) FetchInactive(ctx context.Context) (domain.Accounts, error) {
	return r.fetchByActivity(ctx, SelectInactiveAccounts)
}

func (r *Repository) fetchByActivity(ctx context.Context, query string) (domain.Accounts, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var as Accounts
	for rows.Next() {
		a := new(Account)

		if err = rows.Scan(
			&a.ID,
			&a.Name,
			&a.Lastname,
			&a.PasswordHash,
			&a.Type,
			&a.Identification,
			&a.IdentificationType,
			&a.Active,
		); err != nil {
			return nil, err
		}

		as = append(as, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&as), nil
}

// Create inserts the row and its audit record in one transaction.
// The id is generated here; uuid.New is crypto/rand backed, so no
// coordination is needed for uniqueness.
func (r *Repository) Create(ctx context.Context, req domain.Account, actorID domain.UUID) (*domain.Account, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	a := new(Account)
	err = tx.QueryRow(
		ctx,
		InsertAccount,
		uuid.New(), req.Name, req.Lastname, req.PasswordHash, req.Type, req.Identification, req.IdentificationType,
	).Scan(
		&a.ID,
		&a.Name,
		&a.Lastname,
		&a.PasswordHash,
		&a.Type,
		&a.Identification,
		&a.IdentificationType,
		&a.Active,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrIdentificationTaken
		}
		return nil, err
	}

	if err = appendRecord(ctx, tx, changelog.ChangeCreate, a.ID, actorID); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) Deactivate(ctx context.Context, id domain.UUID, actorID domain.UUID) (*domain.Account, error) {
	return r.mutate(ctx, changelog.ChangeDeactivate, actorID, DeactivateAccountByID, id)
}

func (r *Repository) Reactivate(ctx context.Context, id domain.UUID, newPasswordHash string, actorID domain.UUID) (*domain.Account, error) {
	return r.mutate(ctx, changelog.ChangeReactivate, actorID, ReactivateAccountByID, newPasswordHash, id)
}

func (r *Repository) UpdatePassword(ctx context.Context, id domain.UUID, newPasswordHash string, actorID domain.UUID) (*domain.Account, error) {
	return r.mutate(ctx, changelog.ChangePassword, actorID, UpdatePasswordByID, newPasswordHash, id)
}

func (r *Repository) UpdateRole(ctx context.Context, id domain.UUID, newType string, actorID domain.UUID) (*domain.Account, error) {
	return r.mutate(ctx, changelog.ChangeRole, actorID, UpdateRoleByID, newType, id)
}

// mutate runs one UPDATE plus its audit insert inside a transaction:
// either the row change and the changelog record both persist or neither
// does. Returns (nil, nil) when no row matched.
func (r *Repository) mutate(
	ctx context.Context,
	ct changelog.ChangeType,
	actorID domain.UUID,
	query string,
	args ...any,
) (*domain.Account, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	a := new(Account)
	err = tx.QueryRow(ctx, query, args...).Scan(
		&a.ID,
		&a.Name,
		&a.Lastname,
		&a.PasswordHash,
		&a.Type,
		&a.Identification,
		&a.IdentificationType,
		&a.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err = appendRecord(ctx, tx, ct, a.ID, actorID); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(a), nil
}

func appendRecord(ctx context.Context, tx pgx.Tx, ct changelog.ChangeType, subjectID, actorID domain.UUID) error {
	// one clock read per record, never assembled from calendar fields
	rec := changelog.Record{
		ID:            uuid.New(),
		ChangeType:    ct,
		Datetime:      time.Now().UTC(),
		ModificatorID: actorID,
		ModificatedID: subjectID,
	}
	_, err := tx.Exec(
		ctx,
		changelogDB.InsertRecord,
		rec.ID, int(rec.ChangeType), rec.Datetime, rec.ModificatorID, rec.ModificatedID,
	)
	return err
}
