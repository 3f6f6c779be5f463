package historystore

import (
	"context"

	dbmodels "employee-api/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, rec *dbmodels.EmployeeHistory) error
	List(ctx context.Context, employeeID string) (list []dbmodels.EmployeeHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec *dbmodels.EmployeeHistory) error {
	return i.db.WithContext(ctx).
		Create(rec).
		Error
}

func (i impl) List(ctx context.Context, employeeID string) (list []dbmodels.EmployeeHistory, err error) {
	list = []dbmodels.EmployeeHistory{}
	err = i.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("history_id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
