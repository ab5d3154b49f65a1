package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/moness/staff-portal/config"
	redisadapter "github.com/moness/staff-portal/internal/adapters/redis"
	"github.com/moness/staff-portal/internal/api"
	"github.com/moness/staff-portal/internal/data"
	"github.com/moness/staff-portal/internal/ports"
	"github.com/moness/staff-portal/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Bookings  *service.BookingService
	Menu      *service.MenuService
	Employees *service.EmployeeService
	Sessions  ports.SessionStore
	Alerts    ports.AlertStore
	Audit     ports.AuditRecorder
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB // Optional: nil disables the audit trail
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires the remote API client, Redis-backed stores, and
// the portal services.
func BuildServices(ctx context.Context, deps ServiceDeps) (ServiceContainer, error) {
	client, err := api.New(api.Options{
		BaseURL:    deps.Config.Remote.BaseURL,
		HTTPClient: &http.Client{Timeout: deps.Config.Remote.Timeout},
		Logger:     deps.Logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build api client: %w", err)
	}

	sessions := redisadapter.NewSessionStore(deps.RedisClient)
	alerts := redisadapter.NewAlertStore(deps.RedisClient)

	var audit ports.AuditRecorder = data.NopAuditRecorder{}
	if deps.DB != nil {
		repo := data.NewAuditRepo(deps.DB)
		if err := repo.EnsureSchema(ctx); err != nil {
			return ServiceContainer{}, fmt.Errorf("ensure audit schema: %w", err)
		}
		audit = repo
	}

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			API:        client,
			Sessions:   sessions,
			Audit:      audit,
			Logger:     deps.Logger,
			SessionTTL: deps.Config.Session.TTL,
		}),
		Bookings: service.NewBookingService(service.BookingServiceOptions{
			API:    client,
			Audit:  audit,
			Logger: deps.Logger,
		}),
		Menu: service.NewMenuService(service.MenuServiceOptions{
			API:    client,
			Audit:  audit,
			Logger: deps.Logger,
		}),
		Employees: service.NewEmployeeService(service.EmployeeServiceOptions{
			API:    client,
			Audit:  audit,
			Logger: deps.Logger,
		}),
		Sessions: sessions,
		Alerts:   alerts,
		Audit:    audit,
	}, nil
}
