package memory

import (
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// ConsultaRepository implementa repository.ConsultaRepository en memoria.
type ConsultaRepository struct {
	store *store[*entity.Consulta]
}

var _ repository.ConsultaRepository = (*ConsultaRepository)(nil)

// NewConsultaRepository crea el repositorio vacío.
func NewConsultaRepository() *ConsultaRepository {
	return &ConsultaRepository{store: newStore[*entity.Consulta]()}
}

func (r *ConsultaRepository) Guardar(consulta *entity.Consulta) error {
	r.store.guardar(consulta.ID, consulta)
	return nil
}

func (r *ConsultaRepository) ObtenerPorID(id string) (*entity.Consulta, error) {
	consulta, ok := r.store.obtener(id)
	if !ok {
		return nil, nil
	}
	return consulta, nil
}

func (r *ConsultaRepository) ListarTodos() ([]*entity.Consulta, error) {
	return r.store.listar(), nil
}
