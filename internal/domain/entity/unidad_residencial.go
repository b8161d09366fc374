package entity

import (
	"fmt"
	"strings"

	"github.com/vecindario/mercado-api/internal/domain"
)

// UnidadResidencial es un conjunto residencial (edificio, torre, barrio
// cerrado) con su nómina de residentes y, opcionalmente, su marketplace.
type UnidadResidencial struct {
	ID          string
	Nombre      string
	Direccion   string
	Marketplace *Marketplace
	Residentes  []*Usuario
}

// NewUnidadResidencial valida y construye la unidad.
func NewUnidadResidencial(id, nombre, direccion string) (*UnidadResidencial, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: el ID de la unidad no puede estar vacío", domain.ErrValidacion)
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre de la unidad no puede estar vacío", domain.ErrValidacion)
	}
	direccion = strings.TrimSpace(direccion)
	if direccion == "" {
		return nil, fmt.Errorf("%w: la dirección de la unidad no puede estar vacía", domain.ErrValidacion)
	}
	return &UnidadResidencial{
		ID:        strings.TrimSpace(id),
		Nombre:    nombre,
		Direccion: direccion,
	}, nil
}

// CrearMarketplace crea el marketplace asociado a esta unidad.
func (u *UnidadResidencial) CrearMarketplace(nombre string) *Marketplace {
	mp := NewMarketplace("mp-"+u.ID, nombre, u)
	u.Marketplace = mp
	return mp
}

// RegistrarResidente agrega el usuario a la nómina si aún no figura.
func (u *UnidadResidencial) RegistrarResidente(usuario *Usuario) {
	for _, r := range u.Residentes {
		if r.ID == usuario.ID {
			return
		}
	}
	u.Residentes = append(u.Residentes, usuario)
}

// ObtenerMarketplace devuelve el marketplace de la unidad (nil si no existe).
func (u *UnidadResidencial) ObtenerMarketplace() *Marketplace {
	return u.Marketplace
}

func (u *UnidadResidencial) String() string {
	return fmt.Sprintf("%s - %s", u.Nombre, u.Direccion)
}
