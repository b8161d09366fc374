package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/application/service"
)

// ProductoHandler maneja las peticiones HTTP de publicación de productos.
type ProductoHandler struct {
	svc *service.PublicacionService
}

// NewProductoHandler construye el handler.
func NewProductoHandler(svc *service.PublicacionService) *ProductoHandler {
	return &ProductoHandler{svc: svc}
}

// Publicar godoc
// @Summary      Publicar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PublicarProductoCommand  true  "Datos de la publicación"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Publicar(c *fiber.Ctx) error {
	var cmd dto.PublicarProductoCommand
	if err := c.BodyParser(&cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	producto, err := h.svc.PublicarProducto(cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductoResponse(producto))
}

// List godoc
// @Summary      Listar productos publicados
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	productos, err := h.svc.ListarProductos()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return c.JSON(out)
}
