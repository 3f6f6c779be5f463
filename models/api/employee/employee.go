package employeeapimodels

import (
	"bytes"
	"encoding/json"
	"fmt"

	apimodels "employee-api/models/api"
	dbmodels "employee-api/models/db"
)

const (
	msgRequired = "This field is required."
	msgNull     = "This field may not be null."
	msgBlank    = "This field may not be blank."
)

type EmployeeData struct {
	User         json.RawMessage        `json:"user" validate:"required" description:"arbitrary JSON document"`
	EmployeeType *dbmodels.EmployeeType `json:"employeeType,omitempty" enums:"worker,manager,finance_manager" default:"worker"`

	employeeTypeNull bool
}

// payload keeps employeeType raw so an explicit null can be told from an absent key.
type payload struct {
	User         json.RawMessage `json:"user"`
	EmployeeType json.RawMessage `json:"employeeType"`
}

func (c *EmployeeData) UnmarshalJSON(data []byte) error {
	var body payload
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	employeeType, isNull := decodeEmployeeType(body.EmployeeType)
	*c = EmployeeData{
		User:             body.User,
		EmployeeType:     employeeType,
		employeeTypeNull: isNull,
	}
	return nil
}

// Validate checks a create/replace payload.
func (c EmployeeData) Validate() error {
	verr := &apimodels.ValidationError{}
	if msg, ok := checkUser(c.User, true); !ok {
		verr.Add("user", msg)
	}
	if msg, ok := checkEmployeeType(c.EmployeeType, c.employeeTypeNull); !ok {
		verr.Add("employeeType", msg)
	}
	return verr.Err()
}

type EmployeePatch struct {
	User         json.RawMessage        `json:"user,omitempty" description:"arbitrary JSON document"`
	EmployeeType *dbmodels.EmployeeType `json:"employeeType,omitempty" enums:"worker,manager,finance_manager"`

	employeeTypeNull bool
}

func (c *EmployeePatch) UnmarshalJSON(data []byte) error {
	var body payload
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	employeeType, isNull := decodeEmployeeType(body.EmployeeType)
	*c = EmployeePatch{
		User:             body.User,
		EmployeeType:     employeeType,
		employeeTypeNull: isNull,
	}
	return nil
}

// Validate checks a partial update; absent fields are left untouched.
func (c EmployeePatch) Validate() error {
	verr := &apimodels.ValidationError{}
	if msg, ok := checkUser(c.User, false); !ok {
		verr.Add("user", msg)
	}
	if msg, ok := checkEmployeeType(c.EmployeeType, c.employeeTypeNull); !ok {
		verr.Add("employeeType", msg)
	}
	return verr.Err()
}

type EmployeeView struct {
	ID           string                `json:"id" format:"uuid" readonly:"true" validate:"required"`
	User         json.RawMessage       `json:"user" validate:"required" description:"arbitrary JSON document"`
	EmployeeType dbmodels.EmployeeType `json:"employeeType" enums:"worker,manager,finance_manager" default:"worker" validate:"required"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	return EmployeeView{
		ID:           rec.ID,
		User:         json.RawMessage(rec.User),
		EmployeeType: rec.EmployeeType,
	}
}

// NormalizeUser compacts the submitted document before it is stored.
func NormalizeUser(raw json.RawMessage) dbmodels.JSONDocument {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return dbmodels.JSONDocument(raw)
	}
	return dbmodels.JSONDocument(buf.Bytes())
}

func checkUser(raw json.RawMessage, required bool) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		if required {
			return msgRequired, false
		}
		return "", true
	}
	if string(trimmed) == "null" {
		return msgNull, false
	}
	if dbmodels.JSONDocument(trimmed).IsBlank() {
		return msgBlank, false
	}
	return "", true
}

// decodeEmployeeType keeps non-string values verbatim so they fail as invalid choices.
func decodeEmployeeType(raw json.RawMessage) (value *dbmodels.EmployeeType, isNull bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false
	}
	if string(trimmed) == "null" {
		return nil, true
	}
	var employeeType dbmodels.EmployeeType
	if err := json.Unmarshal(trimmed, &employeeType); err != nil {
		employeeType = dbmodels.EmployeeType(trimmed)
	}
	return &employeeType, false
}

func checkEmployeeType(value *dbmodels.EmployeeType, isNull bool) (string, bool) {
	if isNull {
		return msgNull, false
	}
	if value == nil {
		return "", true
	}
	if !value.IsValid() {
		return fmt.Sprintf("%q is not a valid choice.", string(*value)), false
	}
	return "", true
}
