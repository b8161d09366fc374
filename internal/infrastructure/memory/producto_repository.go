package memory

import (
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// ProductoRepository implementa repository.ProductoRepository en memoria.
type ProductoRepository struct {
	store *store[*entity.Producto]
}

var _ repository.ProductoRepository = (*ProductoRepository)(nil)

// NewProductoRepository crea el repositorio vacío.
func NewProductoRepository() *ProductoRepository {
	return &ProductoRepository{store: newStore[*entity.Producto]()}
}

func (r *ProductoRepository) Guardar(producto *entity.Producto) error {
	r.store.guardar(producto.ID, producto)
	return nil
}

func (r *ProductoRepository) ObtenerPorID(id string) (*entity.Producto, error) {
	producto, ok := r.store.obtener(id)
	if !ok {
		return nil, nil
	}
	return producto, nil
}

func (r *ProductoRepository) ListarTodos() ([]*entity.Producto, error) {
	return r.store.listar(), nil
}
