package employeehandler

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	historystore "employee-api/lib/employee/history-store"
	"employee-api/lib/employee/store"
	"employee-api/lib/metrics"
	apimodels "employee-api/models/api"
	employeeapimodels "employee-api/models/api/employee"
	dbmodels "employee-api/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	employees map[string]dbmodels.Employee
	// storedForm rewrites user on write, the way jsonb reorders keys.
	storedForm func(dbmodels.JSONDocument) dbmodels.JSONDocument
}

func (f *fakeStore) save(rec dbmodels.Employee) {
	if f.storedForm != nil {
		rec.User = f.storedForm(rec.User)
	}
	f.employees[rec.ID] = rec
}

func (f *fakeStore) Create(_ context.Context, rec *dbmodels.Employee) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.save(*rec)
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*dbmodels.Employee, error) {
	rec, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) GetForUpdate(ctx context.Context, id string) (*dbmodels.Employee, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeStore) List(_ context.Context) ([]dbmodels.Employee, error) {
	list := make([]dbmodels.Employee, 0, len(f.employees))
	for _, rec := range f.employees {
		list = append(list, rec)
	}
	sort.Slice(list, func(a, b int) bool { return list[a].ID < list[b].ID })
	return list, nil
}

func (f *fakeStore) Update(_ context.Context, rec *dbmodels.Employee) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if _, ok := f.employees[rec.ID]; !ok {
		return errors.New("record not found")
	}
	rec.UpdatedAt = time.Now()
	f.save(*rec)
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeStore) CountByType(_ context.Context) (map[dbmodels.EmployeeType]int64, error) {
	counts := map[dbmodels.EmployeeType]int64{}
	for _, rec := range f.employees {
		counts[rec.EmployeeType]++
	}
	return counts, nil
}

type fakeHistoryStore struct {
	seq     int64
	entries []dbmodels.EmployeeHistory
}

func (f *fakeHistoryStore) Create(_ context.Context, rec *dbmodels.EmployeeHistory) error {
	f.seq++
	rec.HistoryID = f.seq
	f.entries = append(f.entries, *rec)
	return nil
}

func (f *fakeHistoryStore) List(_ context.Context, employeeID string) ([]dbmodels.EmployeeHistory, error) {
	list := []dbmodels.EmployeeHistory{}
	for _, rec := range f.entries {
		if rec.EmployeeID == employeeID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeTransactor struct {
	employees *fakeStore
	history   *fakeHistoryStore
}

func (f fakeTransactor) Transaction(_ context.Context, fn func(employees store.Provider, history historystore.Provider) error) error {
	return fn(f.employees, f.history)
}

type fixture struct {
	provider  Provider
	employees *fakeStore
	history   *fakeHistoryStore
	metrics   *metrics.Metrics
}

func newFixture() fixture {
	employees := &fakeStore{employees: map[string]dbmodels.Employee{}}
	history := &fakeHistoryStore{}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return fixture{
		provider:  New(employees, history, fakeTransactor{employees: employees, history: history}, m),
		employees: employees,
		history:   history,
		metrics:   m,
	}
}

func employeeType(value dbmodels.EmployeeType) *dbmodels.EmployeeType {
	return &value
}

func decodeData(t *testing.T, body string) employeeapimodels.EmployeeData {
	t.Helper()
	var data employeeapimodels.EmployeeData
	require.Nil(t, json.Unmarshal([]byte(body), &data))
	return data
}

func decodePatch(t *testing.T, body string) employeeapimodels.EmployeePatch {
	t.Helper()
	var patch employeeapimodels.EmployeePatch
	require.Nil(t, json.Unmarshal([]byte(body), &patch))
	return patch
}

// sortedKeys re-encodes a document through a map, which orders object keys.
func sortedKeys(doc dbmodels.JSONDocument) dbmodels.JSONDocument {
	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return doc
	}
	out, err := json.Marshal(value)
	if err != nil {
		return doc
	}
	return out
}

func TestEmployeeHandler(t *testing.T) {
	ctx := context.TODO()

	t.Run(`create assigns fresh ids and applies default type`, func(t *testing.T) {
		f := newFixture()
		seen := map[string]bool{}
		for idx := 0; idx < 5; idx++ {
			view, err := f.provider.Create(ctx, employeeapimodels.EmployeeData{
				User: json.RawMessage(`{"name": "Juan"}`),
			})
			require.Nil(t, err)
			parsed, err := uuid.Parse(view.ID)
			require.Nil(t, err)
			require.Equal(t, view.ID, parsed.String())
			require.False(t, seen[view.ID])
			seen[view.ID] = true
			require.Equal(t, dbmodels.EmployeeTypeWorker, view.EmployeeType)
			require.JSONEq(t, `{"name":"Juan"}`, string(view.User))
		}
		require.Equal(t, float64(5), testutil.ToFloat64(f.metrics.Mutations.WithLabelValues("created")))
		require.Len(t, f.history.entries, 5)
		require.Equal(t, dbmodels.HistoryTypeCreated, f.history.entries[0].HistoryType)
	})

	t.Run(`create rejects unknown type and missing user`, func(t *testing.T) {
		f := newFixture()
		_, err := f.provider.Create(ctx, employeeapimodels.EmployeeData{
			User:         json.RawMessage(`{"name": "Juan"}`),
			EmployeeType: employeeType("intern"),
		})
		var verr *apimodels.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Contains(t, verr.Fields, "employeeType")

		_, err = f.provider.Create(ctx, employeeapimodels.EmployeeData{})
		require.True(t, errors.As(err, &verr))
		require.Equal(t, "This field is required.", verr.Fields["user"])
		require.Empty(t, f.employees.employees)
		require.Empty(t, f.history.entries)
	})

	t.Run(`get missing and malformed ids are not found`, func(t *testing.T) {
		f := newFixture()
		var nfErr *apimodels.NotFoundError
		_, err := f.provider.Get(ctx, uuid.NewString())
		require.True(t, errors.As(err, &nfErr))
		_, err = f.provider.Get(ctx, "not-a-uuid")
		require.True(t, errors.As(err, &nfErr))
		require.Equal(t, "Employee not found: not-a-uuid", err.Error())
	})

	t.Run(`patch appends exactly one snapshot`, func(t *testing.T) {
		f := newFixture()
		created, err := f.provider.Create(ctx, employeeapimodels.EmployeeData{
			User: json.RawMessage(`{"name": "Maria"}`),
		})
		require.Nil(t, err)
		before, err := f.provider.History(ctx, created.ID)
		require.Nil(t, err)
		require.Len(t, before, 1)

		updated, err := f.provider.Patch(ctx, created.ID, employeeapimodels.EmployeePatch{
			EmployeeType: employeeType(dbmodels.EmployeeTypeManager),
		})
		require.Nil(t, err)
		require.Equal(t, dbmodels.EmployeeTypeManager, updated.EmployeeType)
		require.JSONEq(t, `{"name":"Maria"}`, string(updated.User))

		after, err := f.provider.History(ctx, created.ID)
		require.Nil(t, err)
		require.Len(t, after, 2)
		last := after[1]
		require.Equal(t, dbmodels.HistoryTypeChanged, last.HistoryType)
		require.Equal(t, "updated", last.ChangeType)
		require.Equal(t, dbmodels.EmployeeTypeManager, last.EmployeeType)
		require.Len(t, last.Changes, 1)
		require.Equal(t, "employeeType", last.Changes[0].Field)
		require.Equal(t, dbmodels.EmployeeTypeWorker, last.Changes[0].OldValue)
		require.Equal(t, dbmodels.EmployeeTypeManager, last.Changes[0].NewValue)
	})

	t.Run(`update keeps type when omitted`, func(t *testing.T) {
		f := newFixture()
		created, err := f.provider.Create(ctx, employeeapimodels.EmployeeData{
			User:         json.RawMessage(`{"name": "Pedro"}`),
			EmployeeType: employeeType(dbmodels.EmployeeTypeFinanceManager),
		})
		require.Nil(t, err)
		updated, err := f.provider.Update(ctx, created.ID, employeeapimodels.EmployeeData{
			User: json.RawMessage(`{"name": "Pedro Reyes"}`),
		})
		require.Nil(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, dbmodels.EmployeeTypeFinanceManager, updated.EmployeeType)
		require.JSONEq(t, `{"name":"Pedro Reyes"}`, string(updated.User))

		_, err = f.provider.Update(ctx, created.ID, employeeapimodels.EmployeeData{User: json.RawMessage(`null`)})
		var verr *apimodels.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, "This field may not be null.", verr.Fields["user"])
	})

	t.Run(`delete removes the row and keeps history`, func(t *testing.T) {
		f := newFixture()
		created, err := f.provider.Create(ctx, employeeapimodels.EmployeeData{
			User: json.RawMessage(`{"name": "Ana"}`),
		})
		require.Nil(t, err)
		require.Nil(t, f.provider.Delete(ctx, created.ID))

		var nfErr *apimodels.NotFoundError
		_, err = f.provider.Get(ctx, created.ID)
		require.True(t, errors.As(err, &nfErr))
		err = f.provider.Delete(ctx, created.ID)
		require.True(t, errors.As(err, &nfErr))

		history, err := f.provider.History(ctx, created.ID)
		require.Nil(t, err)
		require.Len(t, history, 2)
		require.Equal(t, dbmodels.HistoryTypeDeleted, history[1].HistoryType)
		require.JSONEq(t, `{"name":"Ana"}`, string(history[1].User))
	})

	t.Run(`history of unknown id is not found`, func(t *testing.T) {
		f := newFixture()
		var nfErr *apimodels.NotFoundError
		_, err := f.provider.History(ctx, uuid.NewString())
		require.True(t, errors.As(err, &nfErr))
	})

	t.Run(`list returns every record`, func(t *testing.T) {
		f := newFixture()
		for _, name := range []string{"a", "b", "c"} {
			_, err := f.provider.Create(ctx, employeeapimodels.EmployeeData{
				User: json.RawMessage(`{"name": "` + name + `"}`),
			})
			require.Nil(t, err)
		}
		list, err := f.provider.List(ctx)
		require.Nil(t, err)
		require.Len(t, list, 3)
	})

	t.Run(`create with null type is rejected`, func(t *testing.T) {
		f := newFixture()
		_, err := f.provider.Create(ctx, decodeData(t, `{"user": {"a": 1}, "employeeType": null}`))
		var verr *apimodels.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, map[string]string{"employeeType": "This field may not be null."}, verr.Fields)
		require.Empty(t, f.employees.employees)
		require.Empty(t, f.history.entries)
	})

	t.Run(`update and patch reject invalid input without history`, func(t *testing.T) {
		f := newFixture()
		created, err := f.provider.Create(ctx, employeeapimodels.EmployeeData{
			User: json.RawMessage(`{"name": "Lucia"}`),
		})
		require.Nil(t, err)
		require.Len(t, f.history.entries, 1)

		for _, tc := range []struct {
			name  string
			call  func() error
			field string
			msg   string
		}{
			{`put unknown type`, func() error {
				_, err := f.provider.Update(ctx, created.ID, decodeData(t, `{"user": {"a": 1}, "employeeType": "intern"}`))
				return err
			}, "employeeType", `"intern" is not a valid choice.`},
			{`put null type`, func() error {
				_, err := f.provider.Update(ctx, created.ID, decodeData(t, `{"user": {"a": 1}, "employeeType": null}`))
				return err
			}, "employeeType", "This field may not be null."},
			{`put blank user`, func() error {
				_, err := f.provider.Update(ctx, created.ID, decodeData(t, `{"user": {}}`))
				return err
			}, "user", "This field may not be blank."},
			{`patch unknown type`, func() error {
				_, err := f.provider.Patch(ctx, created.ID, decodePatch(t, `{"employeeType": "intern"}`))
				return err
			}, "employeeType", `"intern" is not a valid choice.`},
			{`patch null type`, func() error {
				_, err := f.provider.Patch(ctx, created.ID, decodePatch(t, `{"employeeType": null}`))
				return err
			}, "employeeType", "This field may not be null."},
			{`patch blank user`, func() error {
				_, err := f.provider.Patch(ctx, created.ID, decodePatch(t, `{"user": {}}`))
				return err
			}, "user", "This field may not be blank."},
			{`patch null user`, func() error {
				_, err := f.provider.Patch(ctx, created.ID, decodePatch(t, `{"user": null}`))
				return err
			}, "user", "This field may not be null."},
		} {
			var verr *apimodels.ValidationError
			err := tc.call()
			require.True(t, errors.As(err, &verr), tc.name)
			require.Equal(t, tc.msg, verr.Fields[tc.field], tc.name)
		}

		require.Len(t, f.history.entries, 1)
		current, err := f.provider.Get(ctx, created.ID)
		require.Nil(t, err)
		require.Equal(t, dbmodels.EmployeeTypeWorker, current.EmployeeType)
		require.JSONEq(t, `{"name":"Lucia"}`, string(current.User))
	})

	t.Run(`mutations return user as stored`, func(t *testing.T) {
		f := newFixture()
		f.employees.storedForm = sortedKeys

		created, err := f.provider.Create(ctx, employeeapimodels.EmployeeData{
			User: json.RawMessage(`{"zeta": 1, "alpha": 2}`),
		})
		require.Nil(t, err)
		require.Equal(t, `{"alpha":2,"zeta":1}`, string(created.User))
		fetched, err := f.provider.Get(ctx, created.ID)
		require.Nil(t, err)
		require.Equal(t, string(fetched.User), string(created.User))

		patched, err := f.provider.Patch(ctx, created.ID, employeeapimodels.EmployeePatch{
			User: json.RawMessage(`{"zeta": 3, "alpha": 4}`),
		})
		require.Nil(t, err)
		require.Equal(t, `{"alpha":4,"zeta":3}`, string(patched.User))

		history, err := f.provider.History(ctx, created.ID)
		require.Nil(t, err)
		require.Len(t, history, 2)
		require.Equal(t, string(patched.User), string(history[1].User))
	})
}
