package adminview

import (
	"embed"
	"html/template"
	"io"

	employeeapimodels "employee-api/models/api/employee"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	loginPage  = mustParse("login.html")
	listPage   = mustParse("list.html")
	detailPage = mustParse("detail.html")
)

func mustParse(name string) *template.Template {
	return template.Must(template.New(name).ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
}

type LoginData struct {
	Title    string
	Username string
	Error    string
}

type ListData struct {
	Title     string
	Employees []employeeapimodels.EmployeeView
}

type DetailData struct {
	Title    string
	Employee employeeapimodels.EmployeeView
	UserHTML template.HTML
	History  []employeeapimodels.EmployeeHistoryView
}

func RenderLogin(w io.Writer, data LoginData) error {
	if data.Title == "" {
		data.Title = "Log in"
	}
	return errors.Wrap(loginPage.Execute(w, data), "unable to render login page")
}

func RenderList(w io.Writer, employees []employeeapimodels.EmployeeView) error {
	data := ListData{
		Title:     "Employees",
		Employees: employees,
	}
	return errors.Wrap(listPage.Execute(w, data), "unable to render employee list")
}

// RenderDetail renders one employee with its highlighted user document and history.
func RenderDetail(w io.Writer, employee employeeapimodels.EmployeeView, history []employeeapimodels.EmployeeHistoryView, style string) error {
	userHTML, err := RenderJSON(employee.User, style)
	if err != nil {
		return err
	}
	data := DetailData{
		Title:    "Employee " + employee.ID,
		Employee: employee,
		UserHTML: userHTML,
		History:  history,
	}
	return errors.Wrap(detailPage.Execute(w, data), "unable to render employee detail")
}
