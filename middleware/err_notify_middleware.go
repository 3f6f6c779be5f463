package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"employee-api/fiberlog"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var notifyClient = &http.Client{Timeout: 5 * time.Second}

// ErrNotify posts a short report of every 5xx response to addr.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if err != nil {
			statusCode = fiber.StatusInternalServerError
		}
		if statusCode < fiber.StatusInternalServerError {
			return err
		}

		var data struct {
			Message string `json:"message"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil && err != nil {
			data.Message = err.Error()
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload, marshalErr := json.Marshal(map[string]any{
			"code":       statusCode,
			"method":     c.Method(),
			"path":       path,
			"error":      data.Message,
			"request_id": string(c.Response().Header.Peek(fiberlog.RequestIDHeader)),
		})
		if marshalErr != nil {
			log.WithError(marshalErr).Warn("error building error notification")
			return err
		}
		go func() {
			resp, reqErr := notifyClient.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			_ = resp.Body.Close()
		}()
		return err
	}
}
