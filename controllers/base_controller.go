package controllers

import (
	apimodels "employee-api/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	TitleInvalidEmployee  = "Invalid Employee"
	TitleEmployeeNotFound = "Employee Not Found"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Info("unable to parse request body")
		return errors.New("unable to parse request body")
	}
	return nil
}

// SendError maps handler errors to the response envelope and status code.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	var verr *apimodels.ValidationError
	if errors.As(err, &verr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewValidationError(TitleInvalidEmployee, verr))
	}
	var nfErr *apimodels.NotFoundError
	if errors.As(err, &nfErr) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewTitledError(TitleEmployeeNotFound, nfErr.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
