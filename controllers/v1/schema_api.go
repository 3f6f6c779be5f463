package apiv1

import (
	"employee-api/controllers"
	apimodels "employee-api/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

type schemaApiController struct {
	controllers.BaseAPIController
}

func InitSchemaApiRouters(app *fiber.App) {
	controller := schemaApiController{}
	app.Get("schema", controller.schema)
}

// @Summary OpenAPI description of the service, camelCase field names
// @Tags Service
// @Produce json
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /schema [get]
func (c *schemaApiController) schema(ctx *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return ctx.Status(fiber.StatusOK).SendString(doc)
}
