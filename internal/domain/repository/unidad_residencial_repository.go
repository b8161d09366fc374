package repository

import "github.com/vecindario/mercado-api/internal/domain/entity"

// UnidadResidencialRepository define el puerto de persistencia para
// UnidadResidencial (DIP).
type UnidadResidencialRepository interface {
	Guardar(unidad *entity.UnidadResidencial) error
	ObtenerPorID(id string) (*entity.UnidadResidencial, error)
	ListarTodos() ([]*entity.UnidadResidencial, error)
}
