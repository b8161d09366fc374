package repository

import "github.com/vecindario/mercado-api/internal/domain/entity"

// ServicioRepository define el puerto de persistencia para Servicio (DIP).
type ServicioRepository interface {
	Guardar(servicio *entity.Servicio) error
	ObtenerPorID(id string) (*entity.Servicio, error)
	ListarTodos() ([]*entity.Servicio, error)
}
