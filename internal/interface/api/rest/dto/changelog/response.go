package changelog

import (
	"time"
)

type (
	Entry struct {
		Datetime            time.Time `json:"datetime"`
		ChangeType          int       `json:"change_type"`
		Action              string    `json:"action"`
		ModificatedName     string    `json:"modificated_name"`
		ModificatedLastname string    `json:"modificated_lastname"`
		ModificatorName     string    `json:"modificator_name"`
		ModificatorLastname string    `json:"modificator_lastname"`
	}
	Entries      []Entry
	ResponseData struct {
		Data Entries `json:"data"`
	}
)
