package account

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "account-manager-api/internal/domain/account"
	"account-manager-api/internal/domain/changelog"
)

var accountColumns = []string{
	"id", "name", "lastname", "password_sha256", "type", "identification", "identification_type", "active",
}

func accountRow(id uuid.UUID, active bool) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumns).
		AddRow(id, "John", "Doe", "$2a$10$hash", "admin", "CC-1017234", "CC", active)
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func TestRepository_FetchByIdentification(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantNil bool
		wantErr bool
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("CC-1017234").
					WillReturnRows(accountRow(id, true))
			},
		},
		{
			name: "no rows maps to nil, nil",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("CC-1017234").
					WillReturnError(pgx.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "driver error surfaces",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("CC-1017234").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)
			tt.setup(mock)

			a, err := repo.FetchByIdentification(context.Background(), "CC-1017234")
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, a)
			} else if tt.wantNil {
				require.NoError(t, err)
				require.Nil(t, a)
			} else {
				require.NoError(t, err)
				require.NotNil(t, a)
				assert.Equal(t, id, a.ID)
				assert.Equal(t, "CC-1017234", a.Identification)
				assert.True(t, a.Active)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FetchActiveAndInactive(t *testing.T) {
	mock, repo := newMockRepo(t)

	activeID, inactiveID := uuid.New(), uuid.New()
	mock.ExpectQuery(`WHERE active = TRUE`).
		WillReturnRows(accountRow(activeID, true))
	mock.ExpectQuery(`WHERE active = FALSE`).
		WillReturnRows(accountRow(inactiveID, false))

	active, err := repo.FetchActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, activeID, active[0].ID)
	assert.True(t, active[0].Active)

	inactive, err := repo.FetchInactive(context.Background())
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, inactiveID, inactive[0].ID)
	assert.False(t, inactive[0].Active)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	actor := uuid.New()
	created := uuid.New()

	t.Run("inserts row and audit record in one tx", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), "John", "Doe", "$2a$10$hash", "admin", "CC-1017234", "CC").
			WillReturnRows(accountRow(created, true))
		mock.ExpectExec(`INSERT INTO changelogs`).
			WithArgs(pgxmock.AnyArg(), int(changelog.ChangeCreate), pgxmock.AnyArg(), actor, created).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		a, err := repo.Create(context.Background(), domain.Account{
			Identification:     "CC-1017234",
			IdentificationType: "CC",
			Name:               "John",
			Lastname:           "Doe",
			PasswordHash:       "$2a$10$hash",
			Type:               "admin",
		}, actor)
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, created, a.ID)
		assert.True(t, a.Active)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to sentinel and rolls back", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), "John", "Doe", "$2a$10$hash", "admin", "CC-1017234", "CC").
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		a, err := repo.Create(context.Background(), domain.Account{
			Identification:     "CC-1017234",
			IdentificationType: "CC",
			Name:               "John",
			Lastname:           "Doe",
			PasswordHash:       "$2a$10$hash",
			Type:               "admin",
		}, actor)
		require.ErrorIs(t, err, ErrIdentificationTaken)
		require.Nil(t, a)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("audit insert failure aborts the mutation", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), "John", "Doe", "$2a$10$hash", "admin", "CC-1017234", "CC").
			WillReturnRows(accountRow(created, true))
		mock.ExpectExec(`INSERT INTO changelogs`).
			WithArgs(pgxmock.AnyArg(), int(changelog.ChangeCreate), pgxmock.AnyArg(), actor, created).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		a, err := repo.Create(context.Background(), domain.Account{
			Identification:     "CC-1017234",
			IdentificationType: "CC",
			Name:               "John",
			Lastname:           "Doe",
			PasswordHash:       "$2a$10$hash",
			Type:               "admin",
		}, actor)
		require.Error(t, err)
		require.Nil(t, a)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Mutations(t *testing.T) {
	actor := uuid.New()
	subject := uuid.New()

	tests := []struct {
		name       string
		query      string
		changeType changelog.ChangeType
		args       []any
		call       func(repo domain.Repository) (*domain.Account, error)
		active     bool
	}{
		{
			name:       "deactivate",
			query:      `SET active = FALSE`,
			changeType: changelog.ChangeDeactivate,
			args:       []any{subject},
			call: func(repo domain.Repository) (*domain.Account, error) {
				return repo.Deactivate(context.Background(), subject, actor)
			},
			active: false,
		},
		{
			name:       "reactivate rotates the hash in the same statement",
			query:      `SET active = TRUE`,
			changeType: changelog.ChangeReactivate,
			args:       []any{"$2a$10$newhash", subject},
			call: func(repo domain.Repository) (*domain.Account, error) {
				return repo.Reactivate(context.Background(), subject, "$2a$10$newhash", actor)
			},
			active: true,
		},
		{
			name:       "change password",
			query:      `SET password_sha256`,
			changeType: changelog.ChangePassword,
			args:       []any{"$2a$10$newhash", subject},
			call: func(repo domain.Repository) (*domain.Account, error) {
				return repo.UpdatePassword(context.Background(), subject, "$2a$10$newhash", actor)
			},
			active: true,
		},
		{
			name:       "change role",
			query:      `SET type`,
			changeType: changelog.ChangeRole,
			args:       []any{"auditor", subject},
			call: func(repo domain.Repository) (*domain.Account, error) {
				return repo.UpdateRole(context.Background(), subject, "auditor", actor)
			},
			active: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(tt.query).
				WithArgs(tt.args...).
				WillReturnRows(accountRow(subject, tt.active))
			mock.ExpectExec(`INSERT INTO changelogs`).
				WithArgs(pgxmock.AnyArg(), int(tt.changeType), pgxmock.AnyArg(), actor, subject).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			mock.ExpectCommit()

			a, err := tt.call(repo)
			require.NoError(t, err)
			require.NotNil(t, a)
			assert.Equal(t, subject, a.ID)
			assert.Equal(t, tt.active, a.Active)

			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run(tt.name+" / no row", func(t *testing.T) {
			mock, repo := newMockRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(tt.query).
				WithArgs(tt.args...).
				WillReturnError(pgx.ErrNoRows)
			mock.ExpectRollback()

			a, err := tt.call(repo)
			require.NoError(t, err)
			require.Nil(t, a)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
