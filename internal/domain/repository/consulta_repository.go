package repository

import "github.com/vecindario/mercado-api/internal/domain/entity"

// ConsultaRepository define el puerto de persistencia para Consulta (DIP).
type ConsultaRepository interface {
	Guardar(consulta *entity.Consulta) error
	ObtenerPorID(id string) (*entity.Consulta, error)
	ListarTodos() ([]*entity.Consulta, error)
}
