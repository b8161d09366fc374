package memory

import (
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// CategoriaRepository implementa repository.CategoriaRepository en memoria.
type CategoriaRepository struct {
	store *store[*entity.Categoria]
}

var _ repository.CategoriaRepository = (*CategoriaRepository)(nil)

// NewCategoriaRepository crea el repositorio vacío.
func NewCategoriaRepository() *CategoriaRepository {
	return &CategoriaRepository{store: newStore[*entity.Categoria]()}
}

func (r *CategoriaRepository) Guardar(categoria *entity.Categoria) error {
	r.store.guardar(categoria.ID, categoria)
	return nil
}

func (r *CategoriaRepository) ObtenerPorID(id string) (*entity.Categoria, error) {
	categoria, ok := r.store.obtener(id)
	if !ok {
		return nil, nil
	}
	return categoria, nil
}

func (r *CategoriaRepository) ListarTodos() ([]*entity.Categoria, error) {
	return r.store.listar(), nil
}
