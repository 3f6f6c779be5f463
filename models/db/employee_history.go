package dbmodels

import "time"

type HistoryType string

const (
	HistoryTypeCreated HistoryType = "+"
	HistoryTypeChanged HistoryType = "~"
	HistoryTypeDeleted HistoryType = "-"
)

func (t HistoryType) Name() string {
	switch t {
	case HistoryTypeCreated:
		return "created"
	case HistoryTypeChanged:
		return "updated"
	case HistoryTypeDeleted:
		return "deleted"
	}
	return "unknown"
}

// EmployeeHistory is an append-only snapshot of an employee record taken on
// every create, update and delete. Rows are never updated.
type EmployeeHistory struct {
	HistoryID    int64         `gorm:"primaryKey;autoIncrement"`
	EmployeeID   string        `gorm:"type:uuid;not null;index"`
	User         JSONDocument  `gorm:"type:jsonb;not null"`
	EmployeeType EmployeeType  `gorm:"column:type;type:varchar(15);not null"`
	HistoryType  HistoryType   `gorm:"type:varchar(1);not null"`
	HistoryDate  time.Time     `gorm:"not null;index"`
	Changes      EntityChanges `gorm:"type:jsonb"`
}

func (EmployeeHistory) TableName() string {
	return "employee_history"
}

func NewEmployeeHistory(rec Employee, historyType HistoryType, changes EntityChanges) EmployeeHistory {
	return EmployeeHistory{
		EmployeeID:   rec.ID,
		User:         rec.User,
		EmployeeType: rec.EmployeeType,
		HistoryType:  historyType,
		HistoryDate:  time.Now().UTC(),
		Changes:      changes,
	}
}

// DiffEmployee lists the fields that differ between two states of a record.
func DiffEmployee(before, after Employee) []FieldChanges {
	changes := []FieldChanges{}
	if !before.User.Equal(after.User) {
		changes = append(changes, FieldChanges{
			Field:    "user",
			OldValue: before.User,
			NewValue: after.User,
		})
	}
	if before.EmployeeType != after.EmployeeType {
		changes = append(changes, FieldChanges{
			Field:    "employee_type",
			OldValue: before.EmployeeType,
			NewValue: after.EmployeeType,
		})
	}
	return changes
}
