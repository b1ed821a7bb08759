package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/roi-collector-api/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboard(service Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: DashboardSummary(service),
		},
		{
			Path:    "/v1/channels/:name",
			Method:  http.MethodGet,
			Handler: ChannelData(service),
		},
		{
			Path:    "/v1/system/health",
			Method:  http.MethodGet,
			Handler: SystemHealth(service),
		},
	}
}

func Collection(reporter Reporter, runner CollectionRunner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/collection/status",
			Method:  http.MethodGet,
			Handler: CollectionStatus(reporter),
		},
		{
			Path:    "/v1/collection/history",
			Method:  http.MethodGet,
			Handler: CollectionHistory(reporter),
		},
		{
			Path:    "/v1/collection/execute",
			Method:  http.MethodPost,
			Handler: ExecuteCollection(runner),
		},
	}
}

func Config(service ConfigManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/config",
			Method:  http.MethodGet,
			Handler: GetConfig(service),
		},
		{
			Path:    "/v1/config",
			Method:  http.MethodPost,
			Handler: UpdateConfig(service),
		},
	}
}

func CronJobs(service CronController) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
