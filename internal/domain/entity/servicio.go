package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vecindario/mercado-api/internal/domain"
)

// Servicio es una oferta de trabajo o asistencia de un residente a otros.
// A diferencia de Producto no maneja stock ni imágenes; su disponibilidad
// se controla con el interruptor Disponible.
type Servicio struct {
	ID          string
	Nombre      string // 5-100 caracteres
	Precio      decimal.Decimal
	Proveedor   *Usuario
	Descripcion string // opcional, 10-500 caracteres
	Disponible  bool
	Categoria   *Categoria
}

// NewServicio valida y construye el servicio. Nace disponible.
func NewServicio(id, nombre string, precio decimal.Decimal, proveedor *Usuario, descripcion string, categoria *Categoria) (*Servicio, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: el ID del servicio no puede estar vacío", domain.ErrValidacion)
	}

	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre del servicio no puede estar vacío", domain.ErrValidacion)
	}
	if len([]rune(nombre)) < 5 {
		return nil, fmt.Errorf("%w: el nombre del servicio debe tener al menos 5 caracteres", domain.ErrValidacion)
	}
	if len([]rune(nombre)) > 100 {
		return nil, fmt.Errorf("%w: el nombre del servicio no puede exceder 100 caracteres", domain.ErrValidacion)
	}

	if !precio.IsPositive() {
		return nil, fmt.Errorf("%w: el precio debe ser mayor a 0, recibido: %s", domain.ErrValidacion, precio)
	}

	if proveedor == nil {
		return nil, fmt.Errorf("%w: el servicio debe tener un proveedor", domain.ErrValidacion)
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

	return &Servicio{
		ID:          strings.TrimSpace(id),
		Nombre:      nombre,
		Precio:      precio,
		Proveedor:   proveedor,
		Descripcion: descripcion,
		Disponible:  true,
		Categoria:   categoria,
	}, nil
}

// MarcarNoDisponible retira temporalmente el servicio de la oferta.
func (s *Servicio) MarcarNoDisponible() { s.Disponible = false }

// MarcarDisponible reactiva el servicio.
func (s *Servicio) MarcarDisponible() { s.Disponible = true }

// Listing
func (s *Servicio) ListingID() string              { return s.ID }
func (s *Servicio) ListingNombre() string          { return s.Nombre }
func (s *Servicio) ListingPrecio() decimal.Decimal { return s.Precio }
func (s *Servicio) PropietarioID() string          { return s.Proveedor.ID }
func (s *Servicio) Tipo() TipoListing              { return TipoServicio }

func (s *Servicio) String() string {
	estado := "Disponible"
	if !s.Disponible {
		estado = "No disponible"
	}
	return fmt.Sprintf("%s - $%s [%s]", s.Nombre, s.Precio.StringFixed(2), estado)
}
