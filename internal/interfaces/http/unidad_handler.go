package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/application/service"
)

// UnidadHandler maneja las peticiones HTTP para UnidadResidencial.
type UnidadHandler struct {
	svc *service.UnidadResidencialService
}

// NewUnidadHandler construye el handler.
func NewUnidadHandler(svc *service.UnidadResidencialService) *UnidadHandler {
	return &UnidadHandler{svc: svc}
}

// Create godoc
// @Summary      Crear unidad residencial
// @Tags         unidades
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUnidadResidencialCommand  true  "Datos de la unidad"
// @Success      201   {object}  dto.UnidadResidencialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/unidades [post]
func (h *UnidadHandler) Create(c *fiber.Ctx) error {
	var cmd dto.CrearUnidadResidencialCommand
	if err := c.BodyParser(&cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	unidad, err := h.svc.CrearUnidad(cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toUnidadResponse(unidad))
}

// List godoc
// @Summary      Listar unidades residenciales
// @Tags         unidades
// @Produce      json
// @Success      200  {array}  dto.UnidadResidencialResponse
// @Router       /api/unidades [get]
func (h *UnidadHandler) List(c *fiber.Ctx) error {
	unidades, err := h.svc.ListarUnidades()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.UnidadResidencialResponse, 0, len(unidades))
	for _, u := range unidades {
		out = append(out, toUnidadResponse(u))
	}
	return c.JSON(out)
}
