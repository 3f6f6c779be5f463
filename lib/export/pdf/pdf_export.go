package pdfexport

import (
	"bytes"
	"encoding/json"
	"fmt"

	employeeapimodels "employee-api/models/api/employee"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateEmployeeCard renders one employee and its history as an A4 pdf.
// Core fonts are used, characters outside cp1252 are replaced.
func GenerateEmployeeCard(employee employeeapimodels.EmployeeView, history []employeeapimodels.EmployeeHistoryView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateEmployeeCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Employee "+employee.ID, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Employee "+employee.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr("Employee type: "+string(employee.EmployeeType)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	var indented bytes.Buffer
	if err = json.Indent(&indented, employee.User, "", "    "); err != nil {
		return nil, errors.Wrap(err, "unable to indent user document")
	}
	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 5, tr(indented.String()), "1", "L", false)

	if len(history) != 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "History", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		widths := []float64{15, 45, 25, 35, 70}
		for idx, title := range []string{"#", "Date", "Change", "Employee type", "Changed fields"} {
			pdf.CellFormat(widths[idx], 7, title, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for _, item := range history {
			fields := ""
			for idx, change := range item.Changes {
				if idx != 0 {
					fields += ", "
				}
				fields += change.Field
			}
			values := []string{
				fmt.Sprintf("%d", item.HistoryID),
				item.HistoryDate.Format("2006-01-02 15:04:05"),
				item.ChangeType,
				string(item.EmployeeType),
				fields,
			}
			for idx, value := range values {
				pdf.CellFormat(widths[idx], 7, tr(value), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
