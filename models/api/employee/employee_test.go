package employeeapimodels

import (
	"encoding/json"
	"testing"

	apimodels "employee-api/models/api"
	dbmodels "employee-api/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *apimodels.ValidationError
	require.True(t, errors.As(err, &verr))
	return verr.Fields
}

func TestEmployeeData(t *testing.T) {
	t.Run(`absent type is left for the default`, func(t *testing.T) {
		var data EmployeeData
		require.Nil(t, json.Unmarshal([]byte(`{"user": {"a": 1}}`), &data))
		require.Nil(t, data.EmployeeType)
		require.Nil(t, data.Validate())
	})

	t.Run(`null type is rejected`, func(t *testing.T) {
		var data EmployeeData
		require.Nil(t, json.Unmarshal([]byte(`{"user": {"a": 1}, "employeeType": null}`), &data))
		require.Equal(t, map[string]string{"employeeType": msgNull}, fieldErrors(t, data.Validate()))
	})

	t.Run(`non string type is an invalid choice`, func(t *testing.T) {
		var data EmployeeData
		require.Nil(t, json.Unmarshal([]byte(`{"user": {"a": 1}, "employeeType": 5}`), &data))
		require.Equal(t, map[string]string{"employeeType": `"5" is not a valid choice.`}, fieldErrors(t, data.Validate()))
	})

	t.Run(`valid type is kept`, func(t *testing.T) {
		var data EmployeeData
		require.Nil(t, json.Unmarshal([]byte(`{"user": {"a": 1}, "employeeType": "finance_manager"}`), &data))
		require.NotNil(t, data.EmployeeType)
		require.Equal(t, dbmodels.EmployeeTypeFinanceManager, *data.EmployeeType)
		require.Nil(t, data.Validate())
	})

	t.Run(`null and blank user are rejected`, func(t *testing.T) {
		for body, msg := range map[string]string{
			`{"user": null}`: msgNull,
			`{"user": {}}`:   msgBlank,
			`{"user": ""}`:   msgBlank,
			`{}`:             msgRequired,
		} {
			var data EmployeeData
			require.Nil(t, json.Unmarshal([]byte(body), &data))
			require.Equal(t, map[string]string{"user": msg}, fieldErrors(t, data.Validate()), body)
		}
	})
}

func TestEmployeePatch(t *testing.T) {
	t.Run(`empty patch is valid`, func(t *testing.T) {
		var patch EmployeePatch
		require.Nil(t, json.Unmarshal([]byte(`{}`), &patch))
		require.Nil(t, patch.Validate())
	})

	t.Run(`null type is rejected`, func(t *testing.T) {
		var patch EmployeePatch
		require.Nil(t, json.Unmarshal([]byte(`{"employeeType": null}`), &patch))
		require.Equal(t, map[string]string{"employeeType": msgNull}, fieldErrors(t, patch.Validate()))
	})

	t.Run(`unknown type is rejected`, func(t *testing.T) {
		var patch EmployeePatch
		require.Nil(t, json.Unmarshal([]byte(`{"employeeType": "intern"}`), &patch))
		require.Equal(t, map[string]string{"employeeType": `"intern" is not a valid choice.`}, fieldErrors(t, patch.Validate()))
	})

	t.Run(`null and blank user are rejected`, func(t *testing.T) {
		for body, msg := range map[string]string{
			`{"user": null}`: msgNull,
			`{"user": {}}`:   msgBlank,
			`{"user": []}`:   msgBlank,
		} {
			var patch EmployeePatch
			require.Nil(t, json.Unmarshal([]byte(body), &patch))
			require.Equal(t, map[string]string{"user": msg}, fieldErrors(t, patch.Validate()), body)
		}
	})
}
