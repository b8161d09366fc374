package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/application/service"
	"github.com/vecindario/mercado-api/internal/domain/entity"
)

// ConsultaHandler maneja las peticiones HTTP para Consulta.
type ConsultaHandler struct {
	svc *service.ConsultaService
}

// NewConsultaHandler construye el handler.
func NewConsultaHandler(svc *service.ConsultaService) *ConsultaHandler {
	return &ConsultaHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar consulta sobre un listado
// @Tags         consultas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarConsultaCommand  true  "Datos de la consulta"
// @Success      201   {object}  dto.ConsultaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consultas [post]
func (h *ConsultaHandler) Registrar(c *fiber.Ctx) error {
	var cmd dto.RegistrarConsultaCommand
	if err := c.BodyParser(&cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	consulta, err := h.svc.RegistrarConsulta(cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toConsultaResponse(consulta))
}

// List godoc
// @Summary      Listar consultas por vendedor o comprador
// @Tags         consultas
// @Produce      json
// @Param        vendedor_id   query  string  false  "Filtrar por propietario del listado"
// @Param        comprador_id  query  string  false  "Filtrar por comprador"
// @Success      200  {array}   dto.ConsultaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/consultas [get]
func (h *ConsultaHandler) List(c *fiber.Ctx) error {
	vendedorID := c.Query("vendedor_id")
	compradorID := c.Query("comprador_id")

	var (
		consultas []*entity.Consulta
		err       error
	)
	switch {
	case vendedorID != "":
		consultas, err = h.svc.ListarConsultasVendedor(vendedorID)
	case compradorID != "":
		consultas, err = h.svc.ListarConsultasComprador(compradorID)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "se requiere vendedor_id o comprador_id",
		})
	}
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.ConsultaResponse, 0, len(consultas))
	for _, con := range consultas {
		out = append(out, toConsultaResponse(con))
	}
	return c.JSON(out)
}
