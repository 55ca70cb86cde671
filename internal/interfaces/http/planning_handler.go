package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Producao-api/internal/application/dto"
	"github.com/jhoicas/Producao-api/internal/application/requirements"
	"github.com/jhoicas/Producao-api/internal/domain"
	"github.com/jhoicas/Producao-api/pkg/logger"
)

// PlanningHandler expone el cálculo de necesidades de materiales (protegido).
type PlanningHandler struct {
	uc  *requirements.MaterialRequirementsUseCase
	log *logger.Logger
}

// NewPlanningHandler construye el handler.
func NewPlanningHandler(uc *requirements.MaterialRequirementsUseCase, log *logger.Logger) *PlanningHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PlanningHandler{uc: uc, log: log.Component("planning_handler")}
}

// MaterialRequirements godoc
// @Summary      Necesidades de materias primas por período
// @Description  Agrega la proyección de ventas de los meses indicados, explota la ficha técnica y netea contra stock por ubicación, producto terminado y lotes en proceso.
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        periods  query  string  false  "Meses YYYY-MM separados por coma (o repetidos)"
// @Success      200  {object}  dto.MaterialRequirementsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/planning/material-requirements [get]
func (h *PlanningHandler) MaterialRequirements(c *fiber.Ctx) error {
	return h.compute(c, queryPeriods(c))
}

// ComputeMaterialRequirements godoc
// @Summary      Necesidades de materias primas (selección en el cuerpo)
// @Tags         planning
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MaterialRequirementsRequest  true  "Períodos seleccionados"
// @Success      200  {object}  dto.MaterialRequirementsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/planning/material-requirements [post]
func (h *PlanningHandler) ComputeMaterialRequirements(c *fiber.Ctx) error {
	var in dto.MaterialRequirementsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.compute(c, in.Periods)
}

// Periods godoc
// @Summary      Períodos con proyección de ventas
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/planning/periods [get]
func (h *PlanningHandler) Periods(c *fiber.Ctx) error {
	out, err := h.uc.ListPeriods(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

func (h *PlanningHandler) compute(c *fiber.Ctx, periods []string) error {
	out, err := h.uc.Compute(c.UserContext(), GetCompanyID(c), periods)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// fail traduce errores de dominio a códigos HTTP.
func (h *PlanningHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// queryPeriods acepta ?periods=2024-05,2024-06 y también ?periods=2024-05&periods=2024-06.
func queryPeriods(c *fiber.Ctx) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("periods") {
		for _, token := range strings.Split(string(raw), ",") {
			if token = strings.TrimSpace(token); token != "" {
				out = append(out, token)
			}
		}
	}
	return out
}
