package bootstrap

import (
	"hotel-backoffice/internal/handler"
	"hotel-backoffice/internal/infra/metrics"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() prometheus.Registerer { return prometheus.DefaultRegisterer },
		func() prometheus.Gatherer { return prometheus.DefaultGatherer },
		fx.Annotate(
			metrics.NewRecorder,
			fx.As(new(shared.MetricsRecorder)),
		),
		metrics.NewHTTPMetrics,
		func(http *metrics.HTTPMetrics, g prometheus.Gatherer) handler.Observability {
			return handler.Observability{HTTP: http, Gatherer: g}
		},
	),
)
