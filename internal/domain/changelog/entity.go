package changelog

import (
	"time"

	"github.com/google/uuid"
)

// Change codes are part of the stored data, not just this process:
// rows written with them outlive any one deploy. Do not renumber.
type ChangeType int

const (
	ChangeCreate ChangeType = iota
	ChangeDeactivate
	ChangeReactivate
	ChangePassword
	ChangeRole
)

func (t ChangeType) String() string {
	switch t {
	case ChangeCreate:
		return "created"
	case ChangeDeactivate:
		return "deactivated"
	case ChangeReactivate:
		return "reactivated"
	case ChangePassword:
		return "password_changed"
	case ChangeRole:
		return "role_changed"
	}
	return "unknown"
}

type (
	UUID = uuid.UUID
	// Record is one append-only audit row: who (ModificatorID) did what
	// (ChangeType) to whom (ModificatedID) and when.
	Record struct {
		ID            UUID
		ChangeType    ChangeType
		Datetime      time.Time
		ModificatorID UUID
		ModificatedID UUID
	}
	// Entry is the read-side projection: a record joined live against the
	// users table for both actor and subject display names.
	Entry struct {
		Datetime            time.Time
		ChangeType          ChangeType
		ModificatedName     string
		ModificatedLastname string
		ModificatorName     string
		ModificatorLastname string
	}
	Entries []*Entry
)
