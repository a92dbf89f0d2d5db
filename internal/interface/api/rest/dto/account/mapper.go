package account

import (
	"account-manager-api/internal/domain/account"
)

// ToResponseAccount never copies the stored hash out of the domain model.
func ToResponseAccount(aDomain account.Account) Account {
	var a = Account{
		ID:                 aDomain.ID,
		Identification:     aDomain.Identification,
		IdentificationType: aDomain.IdentificationType,
		Name:               aDomain.Name,
		Lastname:           aDomain.Lastname,
		Type:               aDomain.Type,
		Active:             aDomain.Active,
	}

	return a
}

func ToResponseAccounts(asDomain account.Accounts) Accounts {
	as := make(Accounts, len(asDomain))
	for idx, a := range asDomain {
		as[idx] = ToResponseAccount(*a)
	}

	return as
}

func ToDomainAccount(aRequest Request) account.Account {
	var a = account.Account{
		Identification:     aRequest.IDNumber,
		IdentificationType: aRequest.IDType,
		Name:               aRequest.Name,
		Lastname:           aRequest.Lastname,
		Type:               aRequest.UserType,
	}

	return a
}
