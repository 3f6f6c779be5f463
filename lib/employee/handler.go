package employeehandler

import (
	"context"

	"employee-api/db"
	historystore "employee-api/lib/employee/history-store"
	"employee-api/lib/employee/store"
	"employee-api/lib/metrics"
	initchecker "employee-api/lib/utils/init-checker"
	apimodels "employee-api/models/api"
	employeeapimodels "employee-api/models/api/employee"
	dbmodels "employee-api/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	List(ctx context.Context) ([]employeeapimodels.EmployeeView, error)
	Get(ctx context.Context, id string) (employeeapimodels.EmployeeView, error)
	Create(ctx context.Context, request employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error)
	Update(ctx context.Context, id string, request employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error)
	Patch(ctx context.Context, id string, request employeeapimodels.EmployeePatch) (employeeapimodels.EmployeeView, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]employeeapimodels.EmployeeHistoryView, error)
}

// Transactor runs fn inside one database transaction with stores bound to it.
type Transactor interface {
	Transaction(ctx context.Context, fn func(employees store.Provider, history historystore.Provider) error) error
}

var Instance Provider

func NewHandler() {
	Instance = New(
		store.NewInstance(db.DB),
		historystore.NewInstance(db.DB),
		NewTransactor(db.DB),
		metrics.Instance,
	)
}

func New(employees store.Provider, history historystore.Provider, tx Transactor, m *metrics.Metrics) Provider {
	instance := impl{
		store:        employees,
		historyStore: history,
		tx:           tx,
		metrics:      m,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"historyStore", instance.historyStore,
		"tx", instance.tx,
	)
	return instance
}

type impl struct {
	store        store.Provider
	historyStore historystore.Provider
	tx           Transactor
	metrics      *metrics.Metrics
}

func (i impl) List(ctx context.Context) ([]employeeapimodels.EmployeeView, error) {
	list, err := i.store.List(ctx)
	if err != nil {
		log.WithError(err).Error("unable to list employees")
		return nil, errors.Wrap(err, "unable to list employees")
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, nil
}

func (i impl) Get(ctx context.Context, rawID string) (employeeapimodels.EmployeeView, error) {
	id, ok := parseID(rawID)
	if !ok {
		return employeeapimodels.EmployeeView{}, notFound(rawID)
	}
	rec, err := i.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).WithField("rec_id", id).Error("unable to get employee")
		return employeeapimodels.EmployeeView{}, errors.Wrap(err, "unable to get employee")
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, notFound(id)
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) Create(ctx context.Context, request employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	if err := request.Validate(); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	rec := dbmodels.Employee{
		User:         employeeapimodels.NormalizeUser(request.User),
		EmployeeType: dbmodels.DefaultEmployeeType,
	}
	if request.EmployeeType != nil {
		rec.EmployeeType = *request.EmployeeType
	}
	err := i.tx.Transaction(ctx, func(employees store.Provider, history historystore.Provider) error {
		if err := employees.Create(ctx, &rec); err != nil {
			return errors.Wrap(err, "unable to create employee")
		}
		saved, err := reload(ctx, employees, rec.ID)
		if err != nil {
			return err
		}
		rec = *saved
		changes := dbmodels.EntityChanges{
			Description: dbmodels.HistoryTypeCreated.Name(),
			Data:        dbmodels.DiffEmployee(dbmodels.Employee{}, rec),
		}
		return appendHistory(ctx, history, rec, dbmodels.HistoryTypeCreated, changes)
	})
	if err != nil {
		log.WithError(err).Error("unable to create employee")
		return employeeapimodels.EmployeeView{}, err
	}
	i.metrics.ObserveMutation(dbmodels.HistoryTypeCreated.Name())
	log.WithField("rec_id", rec.ID).
		WithField("employee_type", rec.EmployeeType).
		Info("employee created")
	return employeeapimodels.EmployeeConvert(rec), nil
}

func (i impl) Update(ctx context.Context, id string, request employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	if err := request.Validate(); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return i.modify(ctx, id, func(rec *dbmodels.Employee) {
		rec.User = employeeapimodels.NormalizeUser(request.User)
		if request.EmployeeType != nil {
			rec.EmployeeType = *request.EmployeeType
		}
	})
}

func (i impl) Patch(ctx context.Context, id string, request employeeapimodels.EmployeePatch) (employeeapimodels.EmployeeView, error) {
	if err := request.Validate(); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return i.modify(ctx, id, func(rec *dbmodels.Employee) {
		if len(request.User) != 0 {
			rec.User = employeeapimodels.NormalizeUser(request.User)
		}
		if request.EmployeeType != nil {
			rec.EmployeeType = *request.EmployeeType
		}
	})
}

func (i impl) modify(ctx context.Context, rawID string, apply func(rec *dbmodels.Employee)) (employeeapimodels.EmployeeView, error) {
	id, ok := parseID(rawID)
	if !ok {
		return employeeapimodels.EmployeeView{}, notFound(rawID)
	}
	logger := log.WithField("rec_id", id)
	var result dbmodels.Employee
	err := i.tx.Transaction(ctx, func(employees store.Provider, history historystore.Provider) error {
		rec, err := employees.GetForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "unable to get employee")
		}
		if rec == nil {
			return notFound(id)
		}
		before := *rec
		apply(rec)
		if err = employees.Update(ctx, rec); err != nil {
			return errors.Wrap(err, "unable to update employee")
		}
		saved, err := reload(ctx, employees, id)
		if err != nil {
			return err
		}
		changes := dbmodels.EntityChanges{
			Description: dbmodels.HistoryTypeChanged.Name(),
			Data:        dbmodels.DiffEmployee(before, *saved),
		}
		if err = appendHistory(ctx, history, *saved, dbmodels.HistoryTypeChanged, changes); err != nil {
			return err
		}
		result = *saved
		return nil
	})
	if err != nil {
		if !isNotFound(err) {
			logger.WithError(err).Error("unable to update employee")
		}
		return employeeapimodels.EmployeeView{}, err
	}
	i.metrics.ObserveMutation(dbmodels.HistoryTypeChanged.Name())
	logger.WithField("employee_type", result.EmployeeType).Info("employee updated")
	return employeeapimodels.EmployeeConvert(result), nil
}

// Delete removes the row; the history keeps a final "-" snapshot.
func (i impl) Delete(ctx context.Context, rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		return notFound(rawID)
	}
	logger := log.WithField("rec_id", id)
	err := i.tx.Transaction(ctx, func(employees store.Provider, history historystore.Provider) error {
		rec, err := employees.GetForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "unable to get employee")
		}
		if rec == nil {
			return notFound(id)
		}
		if err = employees.Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(id)
			}
			return errors.Wrap(err, "unable to delete employee")
		}
		changes := dbmodels.EntityChanges{Description: dbmodels.HistoryTypeDeleted.Name()}
		return appendHistory(ctx, history, *rec, dbmodels.HistoryTypeDeleted, changes)
	})
	if err != nil {
		if !isNotFound(err) {
			logger.WithError(err).Error("unable to delete employee")
		}
		return err
	}
	i.metrics.ObserveMutation(dbmodels.HistoryTypeDeleted.Name())
	logger.Info("employee deleted")
	return nil
}

func (i impl) History(ctx context.Context, rawID string) ([]employeeapimodels.EmployeeHistoryView, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, notFound(rawID)
	}
	list, err := i.historyStore.List(ctx, id)
	if err != nil {
		log.WithError(err).WithField("rec_id", id).Error("unable to list employee history")
		return nil, errors.Wrap(err, "unable to list employee history")
	}
	if len(list) == 0 {
		rec, err := i.store.GetByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get employee")
		}
		if rec == nil {
			return nil, notFound(id)
		}
	}
	result := make([]employeeapimodels.EmployeeHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.EmployeeHistoryConvert(rec))
	}
	return result, nil
}

// reload reads the written row back so responses carry user as stored.
func reload(ctx context.Context, employees store.Provider, id string) (*dbmodels.Employee, error) {
	saved, err := employees.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to reload employee")
	}
	if saved == nil {
		return nil, errors.Errorf("employee %s not found after write", id)
	}
	return saved, nil
}

func appendHistory(ctx context.Context, history historystore.Provider, rec dbmodels.Employee, historyType dbmodels.HistoryType, changes dbmodels.EntityChanges) error {
	entry := dbmodels.NewEmployeeHistory(rec, historyType, changes)
	if err := history.Create(ctx, &entry); err != nil {
		return errors.Wrap(err, "unable to save employee history")
	}
	return nil
}

// parseID returns the canonical form of id, or false if it is not a uuid.
func parseID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func notFound(id string) error {
	return &apimodels.NotFoundError{Resource: "Employee", ID: id}
}

func isNotFound(err error) bool {
	var nfErr *apimodels.NotFoundError
	return errors.As(err, &nfErr)
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(DB *gorm.DB) Transactor {
	return gormTransactor{db: DB}
}

func (t gormTransactor) Transaction(ctx context.Context, fn func(employees store.Provider, history historystore.Provider) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(store.NewInstance(tx), historystore.NewInstance(tx))
	})
}
