package apiv1

import (
	"net/http"

	"employee-api/controllers"
	employeehandler "employee-api/lib/employee"
	"employee-api/lib/schema"
	apimodels "employee-api/models/api"
	employeeapimodels "employee-api/models/api/employee"

	"github.com/gofiber/fiber/v2"
)

const employeeTag = "Employees"

// EmployeeEndpoints describes the routes registered by InitEmployeeApiRouters.
var EmployeeEndpoints = []schema.Endpoint{
	{Path: "/employees", Method: http.MethodGet, Summary: "List employees", Tags: []string{employeeTag},
		Response: []employeeapimodels.EmployeeView{}},
	{Path: "/employees", Method: http.MethodPost, Summary: "Create employee", Tags: []string{employeeTag},
		Request: employeeapimodels.EmployeeData{}, Response: employeeapimodels.EmployeeView{}, Status: http.StatusCreated},
	{Path: "/employees/{id}", Method: http.MethodGet, Summary: "Get employee", Tags: []string{employeeTag},
		Response: employeeapimodels.EmployeeView{}},
	{Path: "/employees/{id}", Method: http.MethodPut, Summary: "Replace employee", Tags: []string{employeeTag},
		Request: employeeapimodels.EmployeeData{}, Response: employeeapimodels.EmployeeView{}},
	{Path: "/employees/{id}", Method: http.MethodPatch, Summary: "Update employee fields", Tags: []string{employeeTag},
		Request: employeeapimodels.EmployeePatch{}, Response: employeeapimodels.EmployeeView{}},
	{Path: "/employees/{id}", Method: http.MethodDelete, Summary: "Delete employee", Tags: []string{employeeTag},
		Status: http.StatusNoContent},
	{Path: "/employees/{id}/history", Method: http.MethodGet, Summary: "Employee change history", Tags: []string{employeeTag},
		Response: []employeeapimodels.EmployeeHistoryView{}},
}

type employeeApiController struct {
	controllers.BaseAPIController
	handler employeehandler.Provider
}

func InitEmployeeApiRouters(app *fiber.App, handler employeehandler.Provider) {
	controller := employeeApiController{handler: handler}
	app.Route("employees", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Patch("", controller.patch)
			idRoute.Delete("", controller.delete)
			idRoute.Get("history", controller.history)
		})
	})
}

// @Summary List employees
// @Tags Employees
// @Success 200 {array} employeeapimodels.EmployeeView
// @Failure 500 {object} apimodels.Response
// @router /employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	list, err := c.handler.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Create employee
// @Tags Employees
// @Param	body	body		employeeapimodels.EmployeeData	true	"request body"
// @Success 201 {object} employeeapimodels.EmployeeView
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewTitledError(controllers.TitleInvalidEmployee, err.Error()))
	}
	view, err := c.handler.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Location("/employees/" + view.ID)
	return ctx.Status(fiber.StatusCreated).JSON(view)
}

// @Summary Get employee
// @Tags Employees
// @Param	id	path		string	true	"employee id"
// @Success 200 {object} employeeapimodels.EmployeeView
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	view, err := c.handler.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}

// @Summary Replace employee
// @Tags Employees
// @Param	id		path		string							true	"employee id"
// @Param	body	body		employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} employeeapimodels.EmployeeView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewTitledError(controllers.TitleInvalidEmployee, err.Error()))
	}
	view, err := c.handler.Update(ctx.UserContext(), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}

// @Summary Update employee fields
// @Tags Employees
// @Param	id		path		string							true	"employee id"
// @Param	body	body		employeeapimodels.EmployeePatch	true	"request body"
// @Success 200 {object} employeeapimodels.EmployeeView
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /employees/{id} [patch]
func (c *employeeApiController) patch(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeePatch
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewTitledError(controllers.TitleInvalidEmployee, err.Error()))
	}
	view, err := c.handler.Patch(ctx.UserContext(), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}

// @Summary Delete employee
// @Tags Employees
// @Param	id	path		string	true	"employee id"
// @Success 204
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	if err := c.handler.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Employee change history
// @Tags Employees
// @Param	id	path		string	true	"employee id"
// @Success 200 {array} employeeapimodels.EmployeeHistoryView
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /employees/{id}/history [get]
func (c *employeeApiController) history(ctx *fiber.Ctx) error {
	list, err := c.handler.History(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}
