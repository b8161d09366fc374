package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/application/service"
)

// ServicioHandler maneja las peticiones HTTP de publicación de servicios.
type ServicioHandler struct {
	svc *service.ServicioService
}

// NewServicioHandler construye el handler.
func NewServicioHandler(svc *service.ServicioService) *ServicioHandler {
	return &ServicioHandler{svc: svc}
}

// Publicar godoc
// @Summary      Publicar servicio
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PublicarServicioCommand  true  "Datos de la publicación"
// @Success      201   {object}  dto.ServicioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/servicios [post]
func (h *ServicioHandler) Publicar(c *fiber.Ctx) error {
	var cmd dto.PublicarServicioCommand
	if err := c.BodyParser(&cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	servicio, err := h.svc.PublicarServicio(cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toServicioResponse(servicio))
}

// List godoc
// @Summary      Listar servicios publicados
// @Tags         servicios
// @Produce      json
// @Success      200  {array}  dto.ServicioResponse
// @Router       /api/servicios [get]
func (h *ServicioHandler) List(c *fiber.Ctx) error {
	servicios, err := h.svc.ListarServicios()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ServicioResponse, 0, len(servicios))
	for _, s := range servicios {
		out = append(out, toServicioResponse(s))
	}
	return c.JSON(out)
}
