package memory

import (
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// UnidadResidencialRepository implementa
// repository.UnidadResidencialRepository en memoria.
type UnidadResidencialRepository struct {
	store *store[*entity.UnidadResidencial]
}

var _ repository.UnidadResidencialRepository = (*UnidadResidencialRepository)(nil)

// NewUnidadResidencialRepository crea el repositorio vacío.
func NewUnidadResidencialRepository() *UnidadResidencialRepository {
	return &UnidadResidencialRepository{store: newStore[*entity.UnidadResidencial]()}
}

func (r *UnidadResidencialRepository) Guardar(unidad *entity.UnidadResidencial) error {
	r.store.guardar(unidad.ID, unidad)
	return nil
}

func (r *UnidadResidencialRepository) ObtenerPorID(id string) (*entity.UnidadResidencial, error) {
	unidad, ok := r.store.obtener(id)
	if !ok {
		return nil, nil
	}
	return unidad, nil
}

func (r *UnidadResidencialRepository) ListarTodos() ([]*entity.UnidadResidencial, error) {
	return r.store.listar(), nil
}
