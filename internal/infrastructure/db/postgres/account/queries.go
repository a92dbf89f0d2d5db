package account

const (
	SelectAccountByIdentification = `
		SELECT id, name, lastname, password_sha256, type, identification, identification_type, active
		FROM users
		WHERE identification = $1
	`
	SelectActiveAccounts = `
		SELECT id, name, lastname, password_sha256, type, identification, identification_type, active
		FROM users
		WHERE active = TRUE
	`
	SelectInactiveAccounts = `
		SELECT id, name, lastname, password_sha256, type, identification, identification_type, active
		FROM users
		WHERE active = FALSE
	`
	InsertAccount = `
		INSERT INTO users (id, name, lastname, password_sha256, type, identification, identification_type, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING
		  id, name, lastname, password_sha256, type, identification, identification_type, active
	`
	DeactivateAccountByID = `
		UPDATE users
		SET active = FALSE
		WHERE id = $1
		RETURNING
		  id, name, lastname, password_sha256, type, identification, identification_type, active
	`
	ReactivateAccountByID = `
		UPDATE users
		SET active = TRUE,
		    password_sha256 = $1
		WHERE id = $2
		RETURNING
		  id, name, lastname, password_sha256, type, identification, identification_type, active
	`
	UpdatePasswordByID = `
		UPDATE users
		SET password_sha256 = $1
		WHERE id = $2
		RETURNING
		  id, name, lastname, password_sha256, type, identification, identification_type, active
	`
	UpdateRoleByID = `
		UPDATE users
		SET type = $1
		WHERE id = $2
		RETURNING
		  id, name, lastname, password_sha256, type, identification, identification_type, active
	`
)
