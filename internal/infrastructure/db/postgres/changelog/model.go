package changelog

import (
	"time"
)

type (
	Entry struct {
		Datetime            time.Time
		ChangeType          int
		ModificatedName     string
		ModificatedLastname string
		ModificatorName     string
		ModificatorLastname string
	}
	Entries []*Entry
)
