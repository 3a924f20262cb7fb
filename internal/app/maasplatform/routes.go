package maasplatform

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	activitycreate "github.com/mkravelev/maas-platform/internal/http/handlers/activity/create"
	activitylist "github.com/mkravelev/maas-platform/internal/http/handlers/activity/list"
	"github.com/mkravelev/maas-platform/internal/http/handlers/billing/billingwebhook"
	customerassign "github.com/mkravelev/maas-platform/internal/http/handlers/customer/assign"
	customercreate "github.com/mkravelev/maas-platform/internal/http/handlers/customer/create"
	customerlist "github.com/mkravelev/maas-platform/internal/http/handlers/customer/list"
	customerread "github.com/mkravelev/maas-platform/internal/http/handlers/customer/read"
	employeecreate "github.com/mkravelev/maas-platform/internal/http/handlers/employee/create"
	employeelist "github.com/mkravelev/maas-platform/internal/http/handlers/employee/list"
	"github.com/mkravelev/maas-platform/internal/http/handlers/health"
	packcompose "github.com/mkravelev/maas-platform/internal/http/handlers/pack/compose"
	packcreate "github.com/mkravelev/maas-platform/internal/http/handlers/pack/create"
	packlist "github.com/mkravelev/maas-platform/internal/http/handlers/pack/list"
	packread "github.com/mkravelev/maas-platform/internal/http/handlers/pack/read"
	packremove "github.com/mkravelev/maas-platform/internal/http/handlers/pack/remove"
	packupdate "github.com/mkravelev/maas-platform/internal/http/handlers/pack/update"
	packusage "github.com/mkravelev/maas-platform/internal/http/handlers/pack/usagereport"
	reportprofitability "github.com/mkravelev/maas-platform/internal/http/handlers/report/profitability"
	templatecreate "github.com/mkravelev/maas-platform/internal/http/handlers/template/create"
	templatelist "github.com/mkravelev/maas-platform/internal/http/handlers/template/list"
	templateremove "github.com/mkravelev/maas-platform/internal/http/handlers/template/remove"
	templateupdate "github.com/mkravelev/maas-platform/internal/http/handlers/template/update"
	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	activityservice "github.com/mkravelev/maas-platform/internal/services/activity"
	billingservice "github.com/mkravelev/maas-platform/internal/services/billing"
	catalogservice "github.com/mkravelev/maas-platform/internal/services/catalog"
	customerservice "github.com/mkravelev/maas-platform/internal/services/customer"
	employeeservice "github.com/mkravelev/maas-platform/internal/services/employee"
	packagesservice "github.com/mkravelev/maas-platform/internal/services/packages"
	reportservice "github.com/mkravelev/maas-platform/internal/services/report"
)

// Services — набор сервисов, которые обслуживают маршруты приложения.
type Services struct {
	Catalog  *catalogservice.Service
	Packages *packagesservice.Service
	Customer *customerservice.Service
	Employee *employeeservice.Service
	Activity *activityservice.Service
	Report   *reportservice.Service
	Billing  *billingservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services, tokenParser middlewarectx.TokenParser, webhookSecret string) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(tokenParser, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Use(middlewarectx.MetricsMiddleware())

			r.Post("/templates", templatecreate.New(logger, svc.Catalog).ServeHTTP)
			r.Get("/templates", templatelist.New(logger, svc.Catalog).ServeHTTP)
			r.Put("/templates/{id}", templateupdate.New(logger, svc.Catalog).ServeHTTP)
			r.Delete("/templates/{id}", templateremove.New(logger, svc.Catalog).ServeHTTP)

			r.Post("/packages", packcreate.New(logger, svc.Packages).ServeHTTP)
			r.Get("/packages", packlist.New(logger, svc.Packages).ServeHTTP)
			r.Post("/packages/compose", packcompose.New(logger, svc.Packages).ServeHTTP)
			r.Get("/packages/{id}", packread.New(logger, svc.Packages).ServeHTTP)
			r.Put("/packages/{id}", packupdate.New(logger, svc.Packages).ServeHTTP)
			r.Delete("/packages/{id}", packremove.New(logger, svc.Packages).ServeHTTP)
			r.Get("/packages/{id}/usage", packusage.New(logger, svc.Packages).ServeHTTP)

			r.Post("/customers", customercreate.New(logger, svc.Customer).ServeHTTP)
			r.Get("/customers", customerlist.New(logger, svc.Customer).ServeHTTP)
			r.Get("/customers/{id}", customerread.New(logger, svc.Customer).ServeHTTP)
			r.Post("/customers/{id}/packages", customerassign.New(logger, svc.Customer).ServeHTTP)

			r.Post("/employees", employeecreate.New(logger, svc.Employee).ServeHTTP)
			r.Get("/employees", employeelist.New(logger, svc.Employee).ServeHTTP)

			r.Post("/activities", activitycreate.New(logger, svc.Activity).ServeHTTP)
			r.Get("/customer-packages/{id}/activities", activitylist.New(logger, svc.Activity).ServeHTTP)

			r.Get("/reports/profitability", reportprofitability.New(logger, svc.Report).ServeHTTP)
		})

		// Webhook endpoint (без аутентификации, проверяется подпись)
		r.Post("/billing/webhook", billingwebhook.New(logger, svc.Billing, webhookSecret).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
