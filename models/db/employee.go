package dbmodels

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type EmployeeType string

const (
	EmployeeTypeWorker         EmployeeType = "worker"
	EmployeeTypeManager        EmployeeType = "manager"
	EmployeeTypeFinanceManager EmployeeType = "finance_manager"
)

const DefaultEmployeeType = EmployeeTypeWorker

func EmployeeTypes() []EmployeeType {
	return []EmployeeType{EmployeeTypeWorker, EmployeeTypeManager, EmployeeTypeFinanceManager}
}

func (t EmployeeType) IsValid() bool {
	for _, item := range EmployeeTypes() {
		if item == t {
			return true
		}
	}
	return false
}

type Employee struct {
	BaseModel
	User         JSONDocument `gorm:"type:jsonb;not null"`
	EmployeeType EmployeeType `gorm:"column:type;type:varchar(15);not null;default:worker;index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) Validate() error {
	if e.User.IsBlank() {
		return errors.New("employee user document is empty")
	}
	if !e.EmployeeType.IsValid() {
		return errors.Errorf("unknown employee type %q", e.EmployeeType)
	}
	return nil
}

// JSONDocument holds an arbitrary JSON value stored as jsonb.
type JSONDocument json.RawMessage

func (j JSONDocument) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSONDocument) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONDocument(v)
	default:
		return errors.Errorf("unsupported type for JSONDocument: %T", value)
	}
	return nil
}

func (j JSONDocument) GormDataType() string {
	return "jsonb"
}

func (j JSONDocument) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSONDocument) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}

// IsBlank reports whether the document is missing, null or an empty
// string, object or array.
func (j JSONDocument) IsBlank() bool {
	trimmed := bytes.TrimSpace(j)
	switch string(trimmed) {
	case "", "null", `""`, "{}", "[]":
		return true
	}
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, trimmed); err != nil {
		return false
	}
	switch compacted.String() {
	case "{}", "[]":
		return true
	}
	return false
}

func (j JSONDocument) Equal(other JSONDocument) bool {
	var left, right any
	if json.Unmarshal(j, &left) != nil || json.Unmarshal(other, &right) != nil {
		return bytes.Equal(j, other)
	}
	leftNorm, _ := json.Marshal(left)
	rightNorm, _ := json.Marshal(right)
	return bytes.Equal(leftNorm, rightNorm)
}
