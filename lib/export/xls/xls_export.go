package xlsexport

import (
	"bytes"

	employeeapimodels "employee-api/models/api/employee"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportEmployeeList(list []employeeapimodels.EmployeeView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const employeeSheet = "Employees"

var employeeColumns = []column{
	{title: "Id", width: 40},
	{title: "Employee type", width: 20},
	{title: "User", width: 80},
}

func (i impl) ExportEmployeeList(list []employeeapimodels.EmployeeView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("unable to close xlsx file")
		}
	}()
	if err := f.SetSheetName("Sheet1", employeeSheet); err != nil {
		return nil, errors.Wrap(err, "unable to rename sheet")
	}
	row, err := writeHeader(f, employeeSheet, 0, employeeColumns)
	if err != nil {
		return nil, errors.Wrap(err, "unable to write xlsx header")
	}
	if len(list) != 0 {
		if _, err = writeEmployeeData(f, employeeSheet, list, row); err != nil {
			return nil, errors.Wrap(err, "unable to write xlsx rows")
		}
	}
	return f.WriteToBuffer()
}

func writeEmployeeData(f *excelize.File, sheet string, list []employeeapimodels.EmployeeView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(employeeColumns), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{item.ID, string(item.EmployeeType), string(item.User)}
		for idx, value := range values {
			if err := writeCell(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
