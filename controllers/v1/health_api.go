package apiv1

import (
	"employee-api/controllers"
	apimodels "employee-api/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Pinger reports whether a backing service is reachable.
type Pinger func() error

type healthApiController struct {
	controllers.BaseAPIController
	ping Pinger
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func InitHealthApiRouters(app *fiber.App, ping Pinger) {
	controller := healthApiController{ping: ping}
	app.Get("health", controller.health)
}

// @Summary Service health
// @Tags Service
// @Success 200 {object} apimodels.Response{data=healthStatus}
// @Failure 503 {object} apimodels.Response{data=healthStatus}
// @router /health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := c.ping(); err != nil {
		log.WithError(err).Error("health check failed")
		resp := apimodels.NewError("database is unavailable")
		resp.Data = healthStatus{Status: "DOWN", Database: "DOWN"}
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(healthStatus{Status: "UP", Database: "UP"}))
}
