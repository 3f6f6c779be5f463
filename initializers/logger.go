package initializers

import (
	"employee-api/config"
	"employee-api/fiberlog"

	log "github.com/sirupsen/logrus"
)

func InitLogger() *fiberlog.Config {
	level, err := log.ParseLevel(config.Conf.App.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	log.SetLevel(level)

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	logger.SetLevel(level)
	tags := []string{
		fiberlog.TagMethod,
		fiberlog.TagPath,
		fiberlog.TagStatus,
		fiberlog.TagLatency,
		fiberlog.TagRequestID,
	}
	if !config.Conf.IsProduction() {
		tags = append(tags, fiberlog.TagBody, fiberlog.TagResBody)
	}
	return &fiberlog.Config{
		Logger:    logger,
		Tags:      tags,
		SkipPaths: fiberlog.ConfigDefault.SkipPaths,
	}
}
