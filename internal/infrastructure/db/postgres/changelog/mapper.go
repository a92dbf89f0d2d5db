package changelog

import (
	domain "account-manager-api/internal/domain/changelog"
)

func fromDBModel(model *Entry) *domain.Entry {
	var e = &domain.Entry{
		Datetime:            model.Datetime,
		ChangeType:          domain.ChangeType(model.ChangeType),
		ModificatedName:     model.ModificatedName,
		ModificatedLastname: model.ModificatedLastname,
		ModificatorName:     model.ModificatorName,
		ModificatorLastname: model.ModificatorLastname,
	}

	return e
}

func fromDBModels(models *Entries) domain.Entries {
	es := make(domain.Entries, len(*models))
	for idx, e := range *models {
		es[idx] = fromDBModel(e)
	}

	return es
}
