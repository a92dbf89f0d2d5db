package changelog

import (
	"account-manager-api/internal/domain/changelog"
)

func ToResponseEntry(eDomain changelog.Entry) Entry {
	var e = Entry{
		Datetime:            eDomain.Datetime,
		ChangeType:          int(eDomain.ChangeType),
		Action:              eDomain.ChangeType.String(),
		ModificatedName:     eDomain.ModificatedName,
		ModificatedLastname: eDomain.ModificatedLastname,
		ModificatorName:     eDomain.ModificatorName,
		ModificatorLastname: eDomain.ModificatorLastname,
	}

	return e
}

func ToResponseEntries(esDomain changelog.Entries) Entries {
	es := make(Entries, len(esDomain))
	for idx, e := range esDomain {
		es[idx] = ToResponseEntry(*e)
	}

	return es
}
