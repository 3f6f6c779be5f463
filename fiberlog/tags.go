package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagLatency   = "latency"
	TagStatus    = "status"
	TagMethod    = "method"
	TagPath      = "path"
	TagRoute     = "route"
	TagIP        = "ip"
	TagBody      = "body"
	TagResBody   = "res_body"
	TagRequestID = "request_id"
	TagError     = "error"

	// RequestIDHeader is the response header carrying the request id.
	RequestIDHeader = "X-Request-Id"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
	err   error
}

// FuncTag extracts a single log field from the request.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagRoute: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Route().Path
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Response().Body())
		},
		TagRequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Response().Header.Peek(RequestIDHeader))
		},
		TagError: func(_ *fiber.Ctx, d *data) interface{} {
			if d.err == nil {
				return ""
			}
			return d.err.Error()
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}
