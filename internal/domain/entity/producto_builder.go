package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vecindario/mercado-api/internal/domain"
)

// MaxImagenesPublicacion es el tope de imágenes por defecto en el proceso
// de publicación, más estricto que el tope estructural de la entidad.
const MaxImagenesPublicacion = 4

// ProductoBuilder construye productos por etapas aplicando las reglas de
// negocio del proceso de publicación: nombre 5-60, descripción 20-500 y
// precio COP entre 1.000 y 50.000.000. La entidad Producto vuelve a validar
// sus propios invariantes (más amplios) en NewProducto.
type ProductoBuilder struct {
	maxImagenes int
	vendedor    *Usuario
	categoria   *Categoria
	nombre      string
	descripcion string
	precioCOP   int64
	precioSet   bool
	imagenes    []string
}

// NewProductoBuilder crea el builder. maxImagenes <= 0 usa el valor por defecto.
func NewProductoBuilder(maxImagenes int) *ProductoBuilder {
	if maxImagenes <= 0 {
		maxImagenes = MaxImagenesPublicacion
	}
	return &ProductoBuilder{maxImagenes: maxImagenes}
}

// Vendedor establece el vendedor del producto.
func (b *ProductoBuilder) Vendedor(u *Usuario) *ProductoBuilder {
	b.vendedor = u
	return b
}

// Categoria establece la categoría del producto.
func (b *ProductoBuilder) Categoria(c *Categoria) *ProductoBuilder {
	b.categoria = c
	return b
}

// Nombre establece el nombre (se recorta al asignar).
func (b *ProductoBuilder) Nombre(nombre string) *ProductoBuilder {
	b.nombre = strings.TrimSpace(nombre)
	return b
}

// Descripcion establece la descripción (se recorta al asignar).
func (b *ProductoBuilder) Descripcion(descripcion string) *ProductoBuilder {
	b.descripcion = strings.TrimSpace(descripcion)
	return b
}

// PrecioCOP establece el precio en pesos colombianos.
func (b *ProductoBuilder) PrecioCOP(precio int64) *ProductoBuilder {
	b.precioCOP = precio
	b.precioSet = true
	return b
}

// AddImagen agrega una URL de imagen. Falla de inmediato si la URL está
// vacía o si ya se alcanzó el máximo configurado.
func (b *ProductoBuilder) AddImagen(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("%w: la URL de la imagen no puede estar vacía", domain.ErrValidacion)
	}
	if len(b.imagenes) >= b.maxImagenes {
		return fmt.Errorf("%w: máximo %d imágenes", domain.ErrValidacion, b.maxImagenes)
	}
	b.imagenes = append(b.imagenes, url)
	return nil
}

// MaxImagenes devuelve el tope configurado.
func (b *ProductoBuilder) MaxImagenes() int { return b.maxImagenes }

// Build valida las reglas de publicación, acuña un ID nuevo y devuelve el
// producto completamente validado.
func (b *ProductoBuilder) Build() (*Producto, error) {
	if b.vendedor == nil {
		return nil, fmt.Errorf("%w: vendedor requerido", domain.ErrValidacion)
	}
	if b.categoria == nil {
		return nil, fmt.Errorf("%w: categoría requerida", domain.ErrValidacion)
	}
	if n := len([]rune(b.nombre)); n < 5 || n > 60 {
		return nil, fmt.Errorf("%w: nombre debe tener 5-60 caracteres", domain.ErrValidacion)
	}
	if n := len([]rune(b.descripcion)); n < 20 || n > 500 {
		return nil, fmt.Errorf("%w: descripción debe tener 20-500 caracteres", domain.ErrValidacion)
	}
	if !b.precioSet || b.precioCOP < 1_000 || b.precioCOP > 50_000_000 {
		return nil, fmt.Errorf("%w: precio COP debe estar entre 1.000 y 50.000.000", domain.ErrValidacion)
	}

	return NewProducto(
		uuid.New().String(),
		b.nombre,
		decimal.NewFromInt(b.precioCOP),
		b.vendedor,
		b.descripcion,
		1,
		b.categoria,
		append([]string(nil), b.imagenes...),
	)
}
