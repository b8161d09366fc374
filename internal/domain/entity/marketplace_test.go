package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindario/mercado-api/internal/domain/entity"
)

func marketplaceDePrueba(t *testing.T) (*entity.Marketplace, *entity.Categoria, *entity.Categoria) {
	t.Helper()
	unidad, err := entity.NewUnidadResidencial("unidad-1", "Torres del Parque", "Calle 26 #5-43")
	require.NoError(t, err)
	mp := unidad.CrearMarketplace("Mercado Torres")

	hogar, err := entity.NewCategoria("cat-1", "Hogar", "")
	require.NoError(t, err)
	servicios, err := entity.NewCategoria("cat-2", "Servicios", "")
	require.NoError(t, err)
	mp.RegistrarCategoria(hogar)
	mp.RegistrarCategoria(servicios)

	vendedor := vendedorDePrueba(t)

	silla, err := entity.NewProducto("p-1", "Silla de oficina", decimal.NewFromInt(120_000),
		vendedor, "Silla cómoda para escritorio", 2, hogar, nil)
	require.NoError(t, err)
	lampara, err := entity.NewProducto("p-2", "Lámpara de escritorio", decimal.NewFromInt(45_000),
		vendedor, "Lámpara LED con brazo flexible", 1, nil, nil)
	require.NoError(t, err)
	mp.PublicarProducto(silla)
	mp.PublicarProducto(lampara)

	reparacion, err := entity.NewServicio("s-1", "Reparación de neveras", decimal.NewFromInt(80_000),
		vendedor, "", servicios)
	require.NoError(t, err)
	plomeria, err := entity.NewServicio("s-2", "Plomería a domicilio", decimal.NewFromInt(60_000),
		vendedor, "", servicios)
	require.NoError(t, err)
	plomeria.MarcarNoDisponible()
	mp.PublicarServicio(reparacion)
	mp.PublicarServicio(plomeria)

	return mp, hogar, servicios
}

// Los filtros de búsqueda son opcionales y se componen con AND.
func TestMarketplace_BuscarProductos(t *testing.T) {
	mp, hogar, _ := marketplaceDePrueba(t)

	// sin filtros devuelve todo
	assert.Len(t, mp.BuscarProductos(nil, ""), 2)

	// solo categoría
	porCategoria := mp.BuscarProductos(hogar, "")
	require.Len(t, porCategoria, 1)
	assert.Equal(t, "p-1", porCategoria[0].ID)

	// texto sin distinción de mayúsculas, contra nombre o descripción
	porTexto := mp.BuscarProductos(nil, "ESCRITORIO")
	assert.Len(t, porTexto, 2)

	// AND de ambos filtros
	ambos := mp.BuscarProductos(hogar, "lámpara")
	assert.Empty(t, ambos)
}

func TestMarketplace_BuscarServicios(t *testing.T) {
	mp, _, servicios := marketplaceDePrueba(t)

	// por defecto solo disponibles
	disponibles := mp.BuscarServicios(servicios, true)
	require.Len(t, disponibles, 1)
	assert.Equal(t, "s-1", disponibles[0].ID)

	// incluyendo no disponibles
	todos := mp.BuscarServicios(servicios, false)
	assert.Len(t, todos, 2)
}

// El carrito se crea perezosamente y es único por usuario.
func TestMarketplace_ObtenerCarrito(t *testing.T) {
	mp, _, _ := marketplaceDePrueba(t)
	usuario := vendedorDePrueba(t)

	carrito := mp.ObtenerCarrito(usuario)
	require.NotNil(t, carrito)
	assert.Same(t, carrito, mp.ObtenerCarrito(usuario))
}

// Registrar dos veces la misma categoría no la duplica.
func TestMarketplace_RegistrarCategoriaIdempotente(t *testing.T) {
	mp, hogar, _ := marketplaceDePrueba(t)
	antes := len(mp.Categorias)
	mp.RegistrarCategoria(hogar)
	assert.Len(t, mp.Categorias, antes)
}

func TestUnidadResidencial_Residentes(t *testing.T) {
	unidad, err := entity.NewUnidadResidencial("unidad-1", "Torres del Parque", "Calle 26 #5-43")
	require.NoError(t, err)

	usuario := vendedorDePrueba(t)
	unidad.RegistrarResidente(usuario)
	unidad.RegistrarResidente(usuario)

	assert.Len(t, unidad.Residentes, 1)
}
