package memory

import (
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// ServicioRepository implementa repository.ServicioRepository en memoria.
type ServicioRepository struct {
	store *store[*entity.Servicio]
}

var _ repository.ServicioRepository = (*ServicioRepository)(nil)

// NewServicioRepository crea el repositorio vacío.
func NewServicioRepository() *ServicioRepository {
	return &ServicioRepository{store: newStore[*entity.Servicio]()}
}

func (r *ServicioRepository) Guardar(servicio *entity.Servicio) error {
	r.store.guardar(servicio.ID, servicio)
	return nil
}

func (r *ServicioRepository) ObtenerPorID(id string) (*entity.Servicio, error) {
	servicio, ok := r.store.obtener(id)
	if !ok {
		return nil, nil
	}
	return servicio, nil
}

func (r *ServicioRepository) ListarTodos() ([]*entity.Servicio, error) {
	return r.store.listar(), nil
}
