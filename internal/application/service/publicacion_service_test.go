package service_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/application/service"
	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/infrastructure/memory"
	"github.com/vecindario/mercado-api/pkg/logger"
)

// fakeNotifier registra las notificaciones recibidas y puede simular fallas.
type fakeNotifier struct {
	llamadas []string
	err      error
}

func (f *fakeNotifier) NotifyListingCreated(telefono, titulo string) error {
	f.llamadas = append(f.llamadas, telefono+"|"+titulo)
	return f.err
}

type publicacionFixture struct {
	svc      *service.PublicacionService
	notifier *fakeNotifier
	producto *memory.ProductoRepository
}

// nuevaPublicacionFixture arma el servicio con un vendedor user-001 y una
// categoría cat-001 ya registrados.
func nuevaPublicacionFixture(t *testing.T, maxImagenes int) publicacionFixture {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	usuarioRepo := memory.NewUsuarioRepository()
	categoriaRepo := memory.NewCategoriaRepository()
	productoRepo := memory.NewProductoRepository()

	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	_, err := usuarioSvc.CrearUsuario(dto.CrearUsuarioCommand{
		ID: "user-001", Nombre: "María García", Email: "maria@email.com",
		Apartamento: "0101", Telefono: "3001112233",
	})
	require.NoError(t, err)

	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	_, err = categoriaSvc.CrearCategoria(dto.CrearCategoriaCommand{
		ID: "cat-001", Nombre: "Hogar", Descripcion: "Artículos para el hogar",
	})
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	svc := service.NewPublicacionService(productoRepo, usuarioRepo, categoriaRepo, notifier, maxImagenes, log)
	return publicacionFixture{svc: svc, notifier: notifier, producto: productoRepo}
}

func comandoValido() dto.PublicarProductoCommand {
	return dto.PublicarProductoCommand{
		VendedorID:     "user-001",
		VendedorStatus: "APPROVED",
		Nombre:         "Silla de oficina",
		Descripcion:    "Silla cómoda, casi nueva, poco uso.",
		PrecioCOP:      120_000,
		CategoriaID:    "cat-001",
		Imagenes:       []string{"https://img.fake/silla1.jpg"},
	}
}

func TestPublicarProducto_Exito(t *testing.T) {
	f := nuevaPublicacionFixture(t, 0)

	producto, err := f.svc.PublicarProducto(comandoValido())
	require.NoError(t, err)

	// precio exacto como decimal
	assert.True(t, producto.Precio.Equal(decimal.NewFromInt(120_000)))
	assert.NotEmpty(t, producto.ID)

	guardado, err := f.producto.ObtenerPorID(producto.ID)
	require.NoError(t, err)
	assert.Same(t, producto, guardado)

	// la notificación lleva el teléfono del vendedor y el título
	require.Len(t, f.notifier.llamadas, 1)
	assert.Equal(t, "3001112233|Silla de oficina", f.notifier.llamadas[0])
}

// La resolución del vendedor precede al chequeo de permiso.
func TestPublicarProducto_VendedorDesconocido(t *testing.T) {
	f := nuevaPublicacionFixture(t, 0)

	cmd := comandoValido()
	cmd.VendedorID = "user-999"
	cmd.VendedorStatus = "PENDING" // irrelevante: el lookup falla primero

	_, err := f.svc.PublicarProducto(cmd)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestPublicarProducto_CategoriaDesconocida(t *testing.T) {
	f := nuevaPublicacionFixture(t, 0)

	cmd := comandoValido()
	cmd.CategoriaID = "cat-999"

	_, err := f.svc.PublicarProducto(cmd)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// Cualquier estado distinto de APPROVED bloquea la publicación aun con
// datos válidos.
func TestPublicarProducto_SinPermiso(t *testing.T) {
	f := nuevaPublicacionFixture(t, 0)

	cmd := comandoValido()
	cmd.VendedorStatus = "PENDING"

	_, err := f.svc.PublicarProducto(cmd)
	assert.ErrorIs(t, err, domain.ErrPermiso)
	assert.Empty(t, f.notifier.llamadas)
}

func TestPublicarProducto_PrecioBajoElPiso(t *testing.T) {
	f := nuevaPublicacionFixture(t, 0)

	cmd := comandoValido()
	cmd.PrecioCOP = 500

	_, err := f.svc.PublicarProducto(cmd)
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

// Las URLs que exceden el máximo configurado se descartan sin error.
func TestPublicarProducto_ImagenesSobrantesSeDescartan(t *testing.T) {
	f := nuevaPublicacionFixture(t, 2)

	cmd := comandoValido()
	cmd.Imagenes = []string{
		"https://img.fake/1.jpg",
		"https://img.fake/2.jpg",
		"https://img.fake/3.jpg",
		"https://img.fake/4.jpg",
	}

	producto, err := f.svc.PublicarProducto(cmd)
	require.NoError(t, err)
	assert.Len(t, producto.Imagenes, 2)
}

// La falla del notificador no afecta la publicación.
func TestPublicarProducto_NotificacionFallida(t *testing.T) {
	f := nuevaPublicacionFixture(t, 0)
	f.notifier.err = errors.New("sms caído")

	producto, err := f.svc.PublicarProducto(comandoValido())
	require.NoError(t, err)
	assert.NotNil(t, producto)
}
