package store

import (
	"context"

	dbmodels "employee-api/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(ctx context.Context, rec *dbmodels.Employee) error
	GetByID(ctx context.Context, id string) (rec *dbmodels.Employee, err error)
	GetForUpdate(ctx context.Context, id string) (rec *dbmodels.Employee, err error)
	List(ctx context.Context) (list []dbmodels.Employee, err error)
	Update(ctx context.Context, rec *dbmodels.Employee) error
	Delete(ctx context.Context, id string) error
	CountByType(ctx context.Context) (counts map[dbmodels.EmployeeType]int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec *dbmodels.Employee) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.db.WithContext(ctx).
		Create(rec).
		Error
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Employee, error) {
	return i.get(i.db.WithContext(ctx), id)
}

// GetForUpdate locks the row until the surrounding transaction ends.
func (i impl) GetForUpdate(ctx context.Context, id string) (*dbmodels.Employee, error) {
	return i.get(i.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (i impl) get(tx *gorm.DB, id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := tx.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(ctx context.Context) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.WithContext(ctx).
		Order("created_at").
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(ctx context.Context, rec *dbmodels.Employee) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	result := i.db.WithContext(ctx).
		Model(rec).
		Select("User", "EmployeeType", "UpdatedAt").
		Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (i impl) Delete(ctx context.Context, id string) error {
	result := i.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbmodels.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (i impl) CountByType(ctx context.Context) (map[dbmodels.EmployeeType]int64, error) {
	rows := []struct {
		EmployeeType dbmodels.EmployeeType
		Total        int64
	}{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Employee{}).
		Select("type AS employee_type, count(*) AS total").
		Group("type").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	counts := make(map[dbmodels.EmployeeType]int64, len(rows))
	for _, row := range rows {
		counts[row.EmployeeType] = row.Total
	}
	return counts, nil
}
