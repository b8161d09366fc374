package entity

import (
	"fmt"
	"strings"

	"github.com/vecindario/mercado-api/internal/domain"
)

// Categoria clasifica productos y servicios del marketplace.
// Es referenciada por los listados pero nunca los posee.
type Categoria struct {
	ID          string
	Nombre      string // 3-50 caracteres
	Descripcion string // opcional, máximo 200 caracteres
}

// NewCategoria valida y normaliza la categoría.
func NewCategoria(id, nombre, descripcion string) (*Categoria, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: el ID de la categoría no puede estar vacío", domain.ErrValidacion)
	}

	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría no puede estar vacío", domain.ErrValidacion)
	}
	if len([]rune(nombre)) < 3 {
		return nil, fmt.Errorf("%w: el nombre de la categoría debe tener al menos 3 caracteres", domain.ErrValidacion)
	}
	if len([]rune(nombre)) > 50 {
		return nil, fmt.Errorf("%w: el nombre de la categoría no puede exceder 50 caracteres", domain.ErrValidacion)
	}

	descripcion = strings.TrimSpace(descripcion)
	if len([]rune(descripcion)) > 200 {
		return nil, fmt.Errorf("%w: la descripción no puede exceder 200 caracteres", domain.ErrValidacion)
	}

	return &Categoria{
		ID:          strings.TrimSpace(id),
		Nombre:      nombre,
		Descripcion: descripcion,
	}, nil
}

func (c *Categoria) String() string { return c.Nombre }
