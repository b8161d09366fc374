package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindario/mercado-api/internal/application/service"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UsuarioSvc     *service.UsuarioService
	CategoriaSvc   *service.CategoriaService
	UnidadSvc      *service.UnidadResidencialService
	PublicacionSvc *service.PublicacionService
	ServicioSvc    *service.ServicioService
	ConsultaSvc    *service.ConsultaService
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	usuarios := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioSvc)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)

	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaSvc)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)

	unidades := api.Group("/unidades")
	unidadHandler := NewUnidadHandler(deps.UnidadSvc)
	unidades.Post("/", unidadHandler.Create)
	unidades.Get("/", unidadHandler.List)

	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.PublicacionSvc)
	productos.Post("/", productoHandler.Publicar)
	productos.Get("/", productoHandler.List)

	servicios := api.Group("/servicios")
	servicioHandler := NewServicioHandler(deps.ServicioSvc)
	servicios.Post("/", servicioHandler.Publicar)
	servicios.Get("/", servicioHandler.List)

	consultas := api.Group("/consultas")
	consultaHandler := NewConsultaHandler(deps.ConsultaSvc)
	consultas.Post("/", consultaHandler.Registrar)
	consultas.Get("/", consultaHandler.List)
}
