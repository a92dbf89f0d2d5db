package account

import (
	domain "account-manager-api/internal/domain/account"
)

func fromDBModel(model *Account) *domain.Account {
	var a = &domain.Account{
		ID:                 model.ID,
		Identification:     model.Identification,
		IdentificationType: model.IdentificationType,
		Name:               model.Name,
		Lastname:           model.Lastname,
		PasswordHash:       model.PasswordHash,
		Type:               model.Type,
		Active:             model.Active,
	}

	return a
}

func fromDBModels(models *Accounts) domain.Accounts {
	as := make(domain.Accounts, len(*models))
	for idx, a := range *models {
		as[idx] = fromDBModel(a)
	}

	return as
}
