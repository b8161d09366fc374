package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vecindario/mercado-api/internal/domain"
)

// MaxImagenesProducto es el tope estructural de imágenes por producto.
// El proceso de publicación aplica un tope más estricto (ver ProductoBuilder).
const MaxImagenesProducto = 10

// Producto es un artículo físico en venta dentro del marketplace.
//
// Invariantes:
//   - Nombre: 5-100 caracteres
//   - Precio: decimal > 0
//   - Stock: >= 0, nunca queda negativo
//   - Descripción: opcional, 10-500 caracteres
//   - Imágenes: máximo 10 URLs
type Producto struct {
	ID          string
	Nombre      string
	Precio      decimal.Decimal
	Vendedor    *Usuario
	Descripcion string
	Stock       int
	Categoria   *Categoria
	Imagenes    []string
}

// NewProducto valida y construye el producto. La categoría es opcional (nil).
func NewProducto(id, nombre string, precio decimal.Decimal, vendedor *Usuario, descripcion string, stock int, categoria *Categoria, imagenes []string) (*Producto, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: el ID del producto no puede estar vacío", domain.ErrValidacion)
	}

	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre del producto no puede estar vacío", domain.ErrValidacion)
	}
	if len([]rune(nombre)) < 5 {
		return nil, fmt.Errorf("%w: el nombre del producto debe tener al menos 5 caracteres", domain.ErrValidacion)
	}
	if len([]rune(nombre)) > 100 {
		return nil, fmt.Errorf("%w: el nombre del producto no puede exceder 100 caracteres", domain.ErrValidacion)
	}

	if !precio.IsPositive() {
		return nil, fmt.Errorf("%w: el precio debe ser mayor a 0, recibido: %s", domain.ErrValidacion, precio)
	}

	if vendedor == nil {
		return nil, fmt.Errorf("%w: el producto debe tener un vendedor", domain.ErrValidacion)
	}

	if stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo, recibido: %d", domain.ErrValidacion, stock)
	}

	descripcion = strings.TrimSpace(descripcion)
	if descripcion != "" {
		if len([]rune(descripcion)) < 10 {
			return nil, fmt.Errorf("%w: la descripción debe tener al menos 10 caracteres", domain.ErrValidacion)
		}
		if len([]rune(descripcion)) > 500 {
			return nil, fmt.Errorf("%w: la descripción no puede exceder 500 caracteres", domain.ErrValidacion)
		}
	}

	if len(imagenes) > MaxImagenesProducto {
		return nil, fmt.Errorf("%w: máximo %d imágenes permitidas, recibido: %d",
			domain.ErrValidacion, MaxImagenesProducto, len(imagenes))
	}

	return &Producto{
		ID:          strings.TrimSpace(id),
		Nombre:      nombre,
		Precio:      precio,
		Vendedor:    vendedor,
		Descripcion: descripcion,
		Stock:       stock,
		Categoria:   categoria,
		Imagenes:    append([]string(nil), imagenes...),
	}, nil
}

// HayStock indica si queda disponibilidad.
func (p *Producto) HayStock() bool { return p.Stock > 0 }

// ReducirStock descuenta unidades vendidas. Falla si la cantidad no es
// positiva o si excede el stock disponible.
func (p *Producto) ReducirStock(cantidad int) error {
	if cantidad <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrValidacion)
	}
	if p.Stock < cantidad {
		return fmt.Errorf("%w: stock insuficiente, disponible: %d, solicitado: %d",
			domain.ErrValidacion, p.Stock, cantidad)
	}
	p.Stock -= cantidad
	return nil
}

// Listing
func (p *Producto) ListingID() string              { return p.ID }
func (p *Producto) ListingNombre() string          { return p.Nombre }
func (p *Producto) ListingPrecio() decimal.Decimal { return p.Precio }
func (p *Producto) PropietarioID() string          { return p.Vendedor.ID }
func (p *Producto) Tipo() TipoListing              { return TipoProducto }

func (p *Producto) String() string {
	return fmt.Sprintf("%s - $%s", p.Nombre, p.Precio.StringFixed(2))
}
