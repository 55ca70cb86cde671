package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Producao-api/internal/application/dto"
	"github.com/jhoicas/Producao-api/internal/application/requirements"
	"github.com/jhoicas/Producao-api/pkg/logger"
)

// Pinger verifica la base de datos para /health. *pgxpool.Pool lo implementa.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlanningUC  *requirements.MaterialRequirementsUseCase
	JWTSecret   string
	ServiceName string
	DB          Pinger // opcional
	MetricsPath string // vacío desactiva /metrics
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps))
	if deps.MetricsPath != "" {
		app.Get(deps.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Planificación de materiales (protegido)
	planning := protected.Group("/planning")
	planningHandler := NewPlanningHandler(deps.PlanningUC, deps.Logger)
	planning.Get("/material-requirements", planningHandler.MaterialRequirements)
	planning.Post("/material-requirements", planningHandler.ComputeMaterialRequirements)
	planning.Get("/periods", planningHandler.Periods)
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.DB != nil {
			if err := deps.DB.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_UNAVAILABLE", Message: "base de datos no disponible"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	}
}
