package apiv1

import (
	"fmt"
	"time"

	"employee-api/controllers"
	adminpanelauthhandler "employee-api/lib/admin-panel/auth"
	adminview "employee-api/lib/admin-view"
	employeehandler "employee-api/lib/employee"
	pdfexport "employee-api/lib/export/pdf"
	xlsexport "employee-api/lib/export/xls"
	authutils "employee-api/lib/utils/auth-utils"
	"employee-api/middleware"
	authapimodels "employee-api/models/api/auth"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type AdminOptions struct {
	JWTSecret    string
	SecureCookie bool
	Style        string
}

type adminApiController struct {
	controllers.BaseAPIController
	employees employeehandler.Provider
	auth      adminpanelauthhandler.Provider
	export    xlsexport.Provider
	options   AdminOptions
}

// InitAdminApiRouters registers the read-only console. Mount app under /admin.
func InitAdminApiRouters(app *fiber.App, employees employeehandler.Provider, auth adminpanelauthhandler.Provider, export xlsexport.Provider, options AdminOptions) {
	controller := adminApiController{
		employees: employees,
		auth:      auth,
		export:    export,
		options:   options,
	}
	app.Get("login", controller.loginPage)
	app.Post("login", controller.login)
	app.Get("logout", controller.logout)

	console := app.Group("employees", middleware.AdminAuthorizationRequired(options.JWTSecret))
	console.Get("", controller.list)
	console.Get("export", controller.exportList)
	console.Get(":id", controller.detail)
	console.Get(":id/pdf", controller.exportCard)
}

func (c *adminApiController) loginPage(ctx *fiber.Ctx) error {
	ctx.Type("html", "utf-8")
	return adminview.RenderLogin(ctx, adminview.LoginData{})
}

func (c *adminApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		ctx.Status(fiber.StatusBadRequest).Type("html", "utf-8")
		return adminview.RenderLogin(ctx, adminview.LoginData{Error: err.Error()})
	}
	resp, err := c.auth.Login(payload)
	if err != nil {
		ctx.Status(fiber.StatusUnauthorized).Type("html", "utf-8")
		return adminview.RenderLogin(ctx, adminview.LoginData{
			Username: payload.Username,
			Error:    "Invalid username or password",
		})
	}
	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.AdminTokenCookie,
		Value:    resp.Token,
		Path:     "/admin",
		Expires:  resp.ExpiresAt,
		Secure:   c.options.SecureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect("/admin/employees", fiber.StatusSeeOther)
}

func (c *adminApiController) logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.AdminTokenCookie,
		Value:    "",
		Path:     "/admin",
		Expires:  time.Unix(0, 0),
		Secure:   c.options.SecureCookie,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect("/admin/login", fiber.StatusSeeOther)
}

func (c *adminApiController) list(ctx *fiber.Ctx) error {
	list, err := c.employees.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Type("html", "utf-8")
	return adminview.RenderList(ctx, list)
}

func (c *adminApiController) detail(ctx *fiber.Ctx) error {
	view, err := c.employees.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	history, err := c.employees.History(ctx.UserContext(), view.ID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Type("html", "utf-8")
	return adminview.RenderDetail(ctx, view, history, c.options.Style)
}

func (c *adminApiController) exportList(ctx *fiber.Ctx) error {
	list, err := c.employees.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, err)
	}
	data, err := c.export.ExportEmployeeList(list)
	if err != nil {
		log.WithError(err).Error("unable to export employees")
		return c.SendError(ctx, err)
	}
	log.WithField("admin", authutils.GetSubject(ctx)).Info("employee list exported")
	fileName := fmt.Sprintf("employees-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

func (c *adminApiController) exportCard(ctx *fiber.Ctx) error {
	view, err := c.employees.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	history, err := c.employees.History(ctx.UserContext(), view.ID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	data, err := pdfexport.GenerateEmployeeCard(view, history)
	if err != nil {
		log.WithError(err).WithField("rec_id", view.ID).Error("unable to render employee card")
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="employee-`+view.ID+`.pdf"`)
	return ctx.Send(data)
}
