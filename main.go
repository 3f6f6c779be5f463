package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"employee-api/config"
	apiv1 "employee-api/controllers/v1"
	"employee-api/db"
	"employee-api/fiberlog"
	"employee-api/initializers"
	adminpanelauthhandler "employee-api/lib/admin-panel/auth"
	adminview "employee-api/lib/admin-view"
	employeehandler "employee-api/lib/employee"
	xlsexport "employee-api/lib/export/xls"
	"employee-api/lib/metrics"
	"employee-api/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type services struct {
	employees employeehandler.Provider
	auth      adminpanelauthhandler.Provider
	export    xlsexport.Provider
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
	ping      apiv1.Pinger
}

func newApp(conf *config.Configuration, loggerConfig fiberlog.Config, s services) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:     conf.App.BodyLimit,
		StrictRouting: true,
	})
	app.Use(fiberRecover.New())
	app.Use(middleware.RequestID())
	app.Use(fiberlog.New(loggerConfig))
	app.Use(middleware.Metrics(s.metrics))
	if conf.ErrNotify.Addr != "" {
		app.Use(middleware.ErrNotify(conf.ErrNotify.Addr))
	}
	app.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + fiberlog.RequestIDHeader,
		AllowMethods:  "GET, POST, PATCH, DELETE, PUT",
		ExposeHeaders: fiberlog.RequestIDHeader + ", Location",
	}))
	if conf.Swagger.FilePath != "" {
		app.Use(swagger.New(swagger.Config{
			Path:     "swagger",
			FilePath: conf.Swagger.FilePath,
			Title:    "Employee API",
		}))
	}

	app.Get("metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	apiv1.InitHealthApiRouters(app, s.ping)
	apiv1.InitSchemaApiRouters(app)
	apiv1.InitEmployeeApiRouters(app, s.employees)

	//admin console
	if !conf.AdminEnabled() {
		log.Warn("admin console disabled, ADMIN_PASSWORD_HASH or ADMIN_JWT_SECRET is not set")
		return app
	}
	admin := fiber.New()
	app.Mount("/admin", admin)
	apiv1.InitAdminApiRouters(admin, s.employees, s.auth, s.export, apiv1.AdminOptions{
		JWTSecret:    conf.Admin.JWTSecret,
		SecureCookie: conf.IsProduction(),
		Style:        adminview.DefaultStyle,
	})
	return app
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := newApp(config.Conf, *initializers.LoggerConfig, services{
		employees: employeehandler.Instance,
		auth:      adminpanelauthhandler.Instance,
		export:    xlsexport.Instance,
		metrics:   metrics.Instance,
		gatherer:  prometheus.DefaultGatherer,
		ping:      db.PingDB,
	})

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
