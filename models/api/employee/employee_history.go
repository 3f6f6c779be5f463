package employeeapimodels

import (
	"encoding/json"
	"time"

	"employee-api/lib/utils/helpers"
	dbmodels "employee-api/models/db"
)

type EmployeeHistoryView struct {
	HistoryID    int64                 `json:"historyId" validate:"required"`
	HistoryType  dbmodels.HistoryType  `json:"historyType" enums:"+,~,-" validate:"required"`
	ChangeType   string                `json:"changeType" enums:"created,updated,deleted" validate:"required"`
	HistoryDate  time.Time             `json:"historyDate" validate:"required"`
	ID           string                `json:"id" format:"uuid" validate:"required"`
	User         json.RawMessage       `json:"user" validate:"required" description:"snapshot of the JSON document"`
	EmployeeType dbmodels.EmployeeType `json:"employeeType" enums:"worker,manager,finance_manager" validate:"required"`
	Changes      []FieldChangeView     `json:"changes"`
}

type FieldChangeView struct {
	Field    string `json:"field"`
	OldValue any    `json:"oldValue"`
	NewValue any    `json:"newValue"`
}

func EmployeeHistoryConvert(rec dbmodels.EmployeeHistory) EmployeeHistoryView {
	changes := make([]FieldChangeView, 0, len(rec.Changes.Data))
	for _, item := range rec.Changes.Data {
		changes = append(changes, FieldChangeView{
			Field:    helpers.ToCamelCase(item.Field),
			OldValue: item.OldValue,
			NewValue: item.NewValue,
		})
	}
	return EmployeeHistoryView{
		HistoryID:    rec.HistoryID,
		HistoryType:  rec.HistoryType,
		ChangeType:   rec.HistoryType.Name(),
		HistoryDate:  rec.HistoryDate,
		ID:           rec.EmployeeID,
		User:         json.RawMessage(rec.User),
		EmployeeType: rec.EmployeeType,
		Changes:      changes,
	}
}
