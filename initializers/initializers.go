package initializers

import (
	"context"

	"employee-api/config"
	apiv1 "employee-api/controllers/v1"
	"employee-api/db"
	"employee-api/docs"
	"employee-api/fiberlog"
	adminpanelauthhandler "employee-api/lib/admin-panel/auth"
	employeehandler "employee-api/lib/employee"
	statsworker "employee-api/lib/employee/stats-worker"
	"employee-api/lib/employee/store"
	xlsexport "employee-api/lib/export/xls"
	"employee-api/lib/metrics"
	"employee-api/lib/schema"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitDBConnection()
	metrics.Instance = metrics.NewMetrics(prometheus.DefaultRegisterer)
	employeehandler.NewHandler()
	adminpanelauthhandler.NewHandler()
	xlsexport.NewHandler()
	InitDocs()
	statsworker.StartWorker(ctx, store.NewInstance(db.DB), metrics.Instance, db.PingDB)
}

// InitDocs publishes the camelCase swagger document for the employee routes.
func InitDocs() {
	describer := schema.CamelCase(schema.NewAutoSchema(apiv1.EmployeeEndpoints...))
	doc := schema.Document(describer, schema.Info{
		Title:       "Employee API",
		Description: "CRUD over employees with an append-only change history.",
		Version:     "1.0",
		BasePath:    "/",
	}, apiv1.EmployeeEndpoints)
	if err := docs.Publish(doc, config.Conf.Swagger.FilePath); err != nil {
		log.WithError(err).Error("unable to publish swagger document")
		panic(err.Error())
	}
}
