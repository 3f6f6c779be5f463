package middleware

import (
	"employee-api/fiberlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID tags every response with X-Request-Id, reusing the caller's id
// when one is supplied.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiberlog.RequestIDHeader,
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	})
}
