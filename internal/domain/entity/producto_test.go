package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
)

func vendedorDePrueba(t *testing.T) *entity.Usuario {
	t.Helper()
	u, err := entity.NewUsuario("u-1", "María García", "maria@email.com", "0101", "3001112233")
	require.NoError(t, err)
	return u
}

func TestNewProducto_Valido(t *testing.T) {
	p, err := entity.NewProducto("p-1", "Silla de oficina", decimal.NewFromInt(120000),
		vendedorDePrueba(t), "Silla cómoda para escritorio", 3, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Silla de oficina", p.Nombre)
	assert.True(t, p.Precio.Equal(decimal.NewFromInt(120000)))
	assert.Equal(t, 3, p.Stock)
	assert.True(t, p.HayStock())
}

func TestNewProducto_Rechazos(t *testing.T) {
	vendedor := vendedorDePrueba(t)
	precio := decimal.NewFromInt(1000)

	// nombre por debajo del mínimo de 5 caracteres
	_, err := entity.NewProducto("p-1", "Mesa", precio, vendedor, "", 1, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidacion)

	// precio no positivo
	_, err = entity.NewProducto("p-1", "Mesa de centro", decimal.Zero, vendedor, "", 1, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidacion)

	// stock negativo
	_, err = entity.NewProducto("p-1", "Mesa de centro", precio, vendedor, "", -1, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidacion)

	// sin vendedor
	_, err = entity.NewProducto("p-1", "Mesa de centro", precio, nil, "", 1, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidacion)

	// descripción presente pero muy corta
	_, err = entity.NewProducto("p-1", "Mesa de centro", precio, vendedor, "corta", 1, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidacion)

	// más de 10 imágenes
	imagenes := make([]string, 11)
	for i := range imagenes {
		imagenes[i] = "https://img.fake/x.jpg"
	}
	_, err = entity.NewProducto("p-1", "Mesa de centro", precio, vendedor, "", 1, nil, imagenes)
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

// El stock se descuenta pero nunca queda negativo.
func TestProducto_ReducirStock(t *testing.T) {
	p, err := entity.NewProducto("p-1", "Silla de oficina", decimal.NewFromInt(120000),
		vendedorDePrueba(t), "", 2, nil, nil)
	require.NoError(t, err)

	require.NoError(t, p.ReducirStock(1))
	assert.Equal(t, 1, p.Stock)

	err = p.ReducirStock(5)
	assert.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, 1, p.Stock)

	err = p.ReducirStock(0)
	assert.ErrorIs(t, err, domain.ErrValidacion)

	require.NoError(t, p.ReducirStock(1))
	assert.False(t, p.HayStock())
}
