package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"account-manager-api/internal/interface/api/rest/dto/account"
	"account-manager-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateAccount checks a create request. The store layer performs no
// validation at all, so everything has to be caught here.
func ValidateAccount(r account.Request) map[string]string {
	errs := make(map[string]string)

	// Normalize
	idNumber := strings.TrimSpace(r.IDNumber)
	idType := strings.TrimSpace(r.IDType)
	name := strings.TrimSpace(r.Name)
	last := strings.TrimSpace(r.Lastname)
	userType := strings.TrimSpace(r.UserType)

	// id_number (required + length + allowed chars)
	if idNumber == "" {
		errs["id_number"] = "id_number is required"
	} else if l := utf8.RuneCountInString(idNumber); l < 4 || l > 32 {
		errs["id_number"] = "id_number length must be 4–32 characters"
	} else if !isIdentification(idNumber) {
		errs["id_number"] = "allowed characters: letters, digits, '-'"
	}

	// id_type (required + length)
	if idType == "" {
		errs["id_type"] = "id_type is required"
	} else if l := utf8.RuneCountInString(idType); l > 32 {
		errs["id_type"] = "id_type length must be at most 32 characters"
	}

	// name (required + length + allowed chars)
	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2–64 characters"
	} else if !isHumanName(name) {
		errs["name"] = "allowed characters: letters, space, '-', '''"
	}

	// lastname (required + length + allowed chars)
	if last == "" {
		errs["lastname"] = "lastname is required"
	} else if l := utf8.RuneCountInString(last); l < 2 || l > 64 {
		errs["lastname"] = "lastname length must be 2–64 characters"
	} else if !isHumanName(last) {
		errs["lastname"] = "allowed characters: letters, space, '-', '''"
	}

	// password (required + length)
	if msg := passwordError(r.Password); msg != "" {
		errs["password"] = msg
	}

	// user_type (required + length)
	if userType == "" {
		errs["user_type"] = "user_type is required"
	} else if l := utf8.RuneCountInString(userType); l > 32 {
		errs["user_type"] = "user_type length must be at most 32 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateNewPassword(password string) map[string]string {
	if msg := passwordError(password); msg != "" {
		return map[string]string{"new_password": msg}
	}
	return nil
}

func ValidateNewRole(newType string) map[string]string {
	t := strings.TrimSpace(newType)
	if t == "" {
		return map[string]string{"new_type": "new_type is required"}
	}
	if utf8.RuneCountInString(t) > 32 {
		return map[string]string{"new_type": "new_type length must be at most 32 characters"}
	}
	return nil
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	identification := strings.TrimSpace(r.Identification)
	password := r.Password

	if identification == "" {
		errs["identification"] = "identification is required"
	} else if !isIdentification(identification) {
		errs["identification"] = "allowed characters: letters, digits, '-'"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func passwordError(password string) string {
	if strings.TrimSpace(password) == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8–72 characters"
	}
	return ""
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

func isIdentification(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			continue
		}
		return false
	}
	return true
}
