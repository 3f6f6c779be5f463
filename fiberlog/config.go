package fiberlog

import "github.com/sirupsen/logrus"

// Config holds the access log settings.
type Config struct {
	// Logger falls back to the logrus standard logger when nil.
	Logger *logrus.Logger
	// Tags lists the fields attached to every entry.
	Tags []string
	// SkipPaths are not logged (probes, scrapes).
	SkipPaths []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagRequestID,
	},
	SkipPaths: []string{"/metrics", "/health"},
}

func (c Config) skipped(path string) bool {
	for _, p := range c.SkipPaths {
		if p == path {
			return true
		}
	}
	return false
}
