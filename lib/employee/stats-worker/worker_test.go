package statsworker

import (
	"context"
	"testing"

	"employee-api/lib/employee/store"
	"employee-api/lib/metrics"
	dbmodels "employee-api/models/db"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	store.Provider
	counts map[dbmodels.EmployeeType]int64
	calls  int
}

func (s *countingStore) CountByType(_ context.Context) (map[dbmodels.EmployeeType]int64, error) {
	s.calls++
	return s.counts, nil
}

func TestHandle(t *testing.T) {
	ctx := context.TODO()

	t.Run(`counts every type`, func(t *testing.T) {
		m := metrics.NewMetrics(prometheus.NewRegistry())
		employees := &countingStore{counts: map[dbmodels.EmployeeType]int64{dbmodels.EmployeeTypeWorker: 4}}
		New(employees, m, func() error { return nil }).Handle(ctx)

		require.Equal(t, float64(1), testutil.ToFloat64(m.DatabaseUp))
		require.Equal(t, float64(4), testutil.ToFloat64(m.Employees.WithLabelValues("worker")))
		require.Equal(t, float64(0), testutil.ToFloat64(m.Employees.WithLabelValues("manager")))
		require.Equal(t, float64(0), testutil.ToFloat64(m.Employees.WithLabelValues("finance_manager")))
	})

	t.Run(`database down skips counting`, func(t *testing.T) {
		m := metrics.NewMetrics(prometheus.NewRegistry())
		employees := &countingStore{}
		New(employees, m, func() error { return errors.New("connection refused") }).Handle(ctx)

		require.Equal(t, float64(0), testutil.ToFloat64(m.DatabaseUp))
		require.Zero(t, employees.calls)
	})
}
