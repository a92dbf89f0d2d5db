package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"account-manager-api/internal/application/ports"
	domain "account-manager-api/internal/domain/account"
	"account-manager-api/internal/domain/changelog"
	"account-manager-api/internal/infrastructure/mq"
	"account-manager-api/internal/interface/api/rest/dto/account"
)

type AccountService struct {
	accountRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewAccountService(
	accountRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AccountService {
	return &AccountService{
		accountRepository: accountRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (as *AccountService) FindByIdentification(ctx context.Context, identification string) (*domain.Account, error) {
	a, err := as.accountRepository.FetchByIdentification(ctx, identification)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (as *AccountService) FindActive(ctx context.Context) (domain.Accounts, error) {
	accounts, err := as.accountRepository.FetchActive(ctx)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func (as *AccountService) FindDeactivated(ctx context.Context) (domain.Accounts, error) {
	accounts, err := as.accountRepository.FetchInactive(ctx)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// CreateAccount hashes the plain password before it reaches the
// repository: the store layer persists whatever hash it is handed and
// never sees the plain text.
func (as *AccountService) CreateAccount(
	ctx context.Context,
	req domain.Account,
	password string,
	actorID domain.UUID,
) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	req.PasswordHash = string(hash)
	req.Name = norm.NFC.String(req.Name)
	req.Lastname = norm.NFC.String(req.Lastname)

	aRet, err := as.accountRepository.Create(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	// counted only when the row actually changed: the labels report
	// outcomes, not attempts
	if aRet != nil {
		as.notify(changelog.ChangeCreate, actorID, aRet)
		as.mCounter.WithLabelValues("account_created_total").Inc()
	}

	return aRet, nil
}

func (as *AccountService) DeactivateAccount(ctx context.Context, id, actorID domain.UUID) (*domain.Account, error) {
	aRet, err := as.accountRepository.Deactivate(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if aRet != nil {
		as.notify(changelog.ChangeDeactivate, actorID, aRet)
		as.mCounter.WithLabelValues("account_deactivated_total").Inc()
	}

	return aRet, nil
}

// ReactivateAccount restores the row and rotates the credential in one
// repository call; a reactivated account never comes back with its old
// password.
func (as *AccountService) ReactivateAccount(
	ctx context.Context,
	id domain.UUID,
	newPassword string,
	actorID domain.UUID,
) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	aRet, err := as.accountRepository.Reactivate(ctx, id, string(hash), actorID)
	if err != nil {
		return nil, err
	}

	if aRet != nil {
		as.notify(changelog.ChangeReactivate, actorID, aRet)
		as.mCounter.WithLabelValues("account_reactivated_total").Inc()
	}

	return aRet, nil
}

func (as *AccountService) ChangePassword(
	ctx context.Context,
	id domain.UUID,
	newPassword string,
	actorID domain.UUID,
) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	aRet, err := as.accountRepository.UpdatePassword(ctx, id, string(hash), actorID)
	if err != nil {
		return nil, err
	}

	if aRet != nil {
		as.notify(changelog.ChangePassword, actorID, aRet)
		as.mCounter.WithLabelValues("password_changed_total").Inc()
	}

	return aRet, nil
}

func (as *AccountService) ChangeRole(
	ctx context.Context,
	id domain.UUID,
	newType string,
	actorID domain.UUID,
) (*domain.Account, error) {
	aRet, err := as.accountRepository.UpdateRole(ctx, id, newType, actorID)
	if err != nil {
		return nil, err
	}

	if aRet != nil {
		as.notify(changelog.ChangeRole, actorID, aRet)
		as.mCounter.WithLabelValues("role_changed_total").Inc()
	}

	return aRet, nil
}

func (as *AccountService) notify(ct changelog.ChangeType, actorID domain.UUID, a *domain.Account) {
	as.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Action:    ct.String(),
		ActorID:   actorID.String(),
		SubjectID: a.ID.String(),
		Payload:   account.ToResponseAccount(*a),
	}
}
