package changelog

const (
	InsertRecord = `
		INSERT INTO changelogs (id, change_type, datetime, usermodificator_id, usermodificated_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	SelectEntries = `
		SELECT changelogs.datetime, changelogs.change_type,
		       modificated.name AS modificated_name, modificated.lastname AS modificated_lastname,
		       modificator.name AS modificator_name, modificator.lastname AS modificator_lastname
		FROM changelogs
		JOIN users AS modificated ON changelogs.usermodificated_id = modificated.id
		JOIN users AS modificator ON changelogs.usermodificator_id = modificator.id
		ORDER BY changelogs.datetime, changelogs.id
	`
)
