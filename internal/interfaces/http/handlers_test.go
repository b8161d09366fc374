package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/application/service"
	"github.com/vecindario/mercado-api/internal/infrastructure/memory"
	apihttp "github.com/vecindario/mercado-api/internal/interfaces/http"
	"github.com/vecindario/mercado-api/pkg/logger"
)

type silentNotifier struct{}

func (silentNotifier) NotifyListingCreated(telefono, titulo string) error { return nil }

// appDePrueba monta la API completa sobre repositorios en memoria.
func appDePrueba(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	usuarioRepo := memory.NewUsuarioRepository()
	categoriaRepo := memory.NewCategoriaRepository()
	unidadRepo := memory.NewUnidadResidencialRepository()
	productoRepo := memory.NewProductoRepository()
	servicioRepo := memory.NewServicioRepository()
	consultaRepo := memory.NewConsultaRepository()

	notifier := silentNotifier{}

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		UsuarioSvc:     service.NewUsuarioService(usuarioRepo),
		CategoriaSvc:   service.NewCategoriaService(categoriaRepo),
		UnidadSvc:      service.NewUnidadResidencialService(unidadRepo),
		PublicacionSvc: service.NewPublicacionService(productoRepo, usuarioRepo, categoriaRepo, notifier, 0, log),
		ServicioSvc:    service.NewServicioService(servicioRepo, usuarioRepo, categoriaRepo, notifier, log),
		ConsultaSvc:    service.NewConsultaService(consultaRepo, usuarioRepo, productoRepo, servicioRepo),
	})
	return app
}

// postJSON crea un recurso y exige 201; para sembrar las precondiciones.
func postJSON(t *testing.T, app *fiber.App, path string, body any) {
	t.Helper()
	resp := doPost(t, app, path, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func doPost(t *testing.T, app *fiber.App, path string, body any) *fiberResponse {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var out fiberResponse
	out.StatusCode = resp.StatusCode
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out.Body))
	return &out
}

// fiberResponse captura estado y cuerpo ya decodificado.
type fiberResponse struct {
	StatusCode int
	Body       map[string]any
}

func TestCrearUsuario_HTTP(t *testing.T) {
	app := appDePrueba(t)

	resp := doPost(t, app, "/api/usuarios", dto.CrearUsuarioCommand{
		ID: "user-001", Nombre: "María García", Email: "MARIA@Email.com",
		Apartamento: "0101", Telefono: "300 111 2233",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "user-001", resp.Body["id"])
	// el email se normaliza a minúsculas y el teléfono a solo dígitos
	assert.Equal(t, "maria@email.com", resp.Body["email"])
	assert.Equal(t, "3001112233", resp.Body["telefono"])
}

func TestCrearUsuario_HTTP_Duplicado(t *testing.T) {
	app := appDePrueba(t)
	cmd := dto.CrearUsuarioCommand{ID: "user-001", Nombre: "María García", Email: "maria@email.com"}

	postJSON(t, app, "/api/usuarios", cmd)
	resp := doPost(t, app, "/api/usuarios", cmd)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_EXISTS", resp.Body["code"])
}

func TestCrearUsuario_HTTP_EmailInvalido(t *testing.T) {
	app := appDePrueba(t)

	resp := doPost(t, app, "/api/usuarios", dto.CrearUsuarioCommand{
		ID: "user-001", Nombre: "María", Email: "no-es-email",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", resp.Body["code"])
}

func TestPublicarProducto_HTTP(t *testing.T) {
	app := appDePrueba(t)
	postJSON(t, app, "/api/usuarios", dto.CrearUsuarioCommand{
		ID: "user-001", Nombre: "María García", Email: "maria@email.com", Telefono: "3001112233",
	})
	postJSON(t, app, "/api/categorias", dto.CrearCategoriaCommand{ID: "cat-001", Nombre: "Hogar"})

	resp := doPost(t, app, "/api/productos", dto.PublicarProductoCommand{
		VendedorID: "user-001", VendedorStatus: "APPROVED",
		Nombre: "Silla de oficina", Descripcion: "Silla cómoda, casi nueva, poco uso.",
		PrecioCOP: 120_000, CategoriaID: "cat-001",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "120000", resp.Body["precio"])
	assert.Equal(t, "user-001", resp.Body["vendedor_id"])
}

// Vendedor sin aprobación: 403 aun con datos válidos.
func TestPublicarProducto_HTTP_SinPermiso(t *testing.T) {
	app := appDePrueba(t)
	postJSON(t, app, "/api/usuarios", dto.CrearUsuarioCommand{
		ID: "user-001", Nombre: "María García", Email: "maria@email.com",
	})
	postJSON(t, app, "/api/categorias", dto.CrearCategoriaCommand{ID: "cat-001", Nombre: "Hogar"})

	resp := doPost(t, app, "/api/productos", dto.PublicarProductoCommand{
		VendedorID: "user-001", VendedorStatus: "PENDING",
		Nombre: "Silla de oficina", Descripcion: "Silla cómoda, casi nueva, poco uso.",
		PrecioCOP: 120_000, CategoriaID: "cat-001",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", resp.Body["code"])
}

func TestPublicarProducto_HTTP_CategoriaDesconocida(t *testing.T) {
	app := appDePrueba(t)
	postJSON(t, app, "/api/usuarios", dto.CrearUsuarioCommand{
		ID: "user-001", Nombre: "María García", Email: "maria@email.com",
	})

	resp := doPost(t, app, "/api/productos", dto.PublicarProductoCommand{
		VendedorID: "user-001", VendedorStatus: "APPROVED",
		Nombre: "Silla de oficina", Descripcion: "Silla cómoda, casi nueva, poco uso.",
		PrecioCOP: 120_000, CategoriaID: "cat-999",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", resp.Body["code"])
}

func TestListarConsultas_HTTP_SinFiltro(t *testing.T) {
	app := appDePrueba(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/consultas", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCuerpoInvalido_HTTP(t *testing.T) {
	app := appDePrueba(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/usuarios", bytes.NewReader([]byte("{no json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
