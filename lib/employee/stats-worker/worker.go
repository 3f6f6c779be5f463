package statsworker

import (
	"context"
	"time"

	"employee-api/lib/employee/store"
	"employee-api/lib/metrics"
	baseworker "employee-api/lib/utils/base-worker"
	dbmodels "employee-api/models/db"
)

// StartWorker refreshes the database and employee count gauges every minute.
func StartWorker(ctx context.Context, employees store.Provider, m *metrics.Metrics, ping func() error) {
	i := New(employees, m, ping)
	go i.Run(ctx, i.Handle)
}

func New(employees store.Provider, m *metrics.Metrics, ping func() error) *Impl {
	return &Impl{
		BaseImpl:  *baseworker.NewInstance("EmployeeStatsWorker", 5*time.Second, time.Minute),
		employees: employees,
		metrics:   m,
		ping:      ping,
	}
}

type Impl struct {
	baseworker.BaseImpl
	employees store.Provider
	metrics   *metrics.Metrics
	ping      func() error
}

func (i Impl) Handle(ctx context.Context) {
	logger := i.GetLogger()
	if err := i.ping(); err != nil {
		logger.WithError(err).Warn("database ping failed")
		i.metrics.SetDatabaseUp(false)
		return
	}
	i.metrics.SetDatabaseUp(true)

	counts, err := i.employees.CountByType(ctx)
	if err != nil {
		logger.WithError(err).Error("unable to count employees")
		return
	}
	types := make([]string, 0, len(dbmodels.EmployeeTypes()))
	byName := make(map[string]int64, len(counts))
	for _, employeeType := range dbmodels.EmployeeTypes() {
		types = append(types, string(employeeType))
		byName[string(employeeType)] = counts[employeeType]
	}
	i.metrics.SetEmployeeCounts(types, byName)
}
