package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/internal/api/handler/router"
	"github.com/agencydash/analytics-dashboard-api/internal/scheduler"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/acquiring"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/authenticating"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/targeting"
	"github.com/agencydash/analytics-dashboard-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/billing/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyBilling(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/billing/yearly",
			Method:      http.MethodGet,
			Handler:     GetYearlyBilling(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/time",
			Method:      http.MethodGet,
			Handler:     GetTeamTime(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/profitability",
			Method:      http.MethodGet,
			Handler:     GetDealProfitability(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/scorecard",
			Method:      http.MethodGet,
			Handler:     GetTeamScorecard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/scorecard/preview",
			Method:      http.MethodPost,
			Handler:     PreviewTeamScorecard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Targets(service targeting.TargetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets",
			Method:      http.MethodGet,
			Handler:     ListTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets/:team",
			Method:      http.MethodPut,
			Handler:     SetTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/targets/:team",
			Method:      http.MethodDelete,
			Handler:     DeleteTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Datasets(loader acquiring.Loader, refreshService *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets/status",
			Method:      http.MethodGet,
			Handler:     GetDatasetStatus(loader, refreshService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/datasets/refresh",
			Method:      http.MethodPost,
			Handler:     TriggerDatasetRefresh(refreshService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
