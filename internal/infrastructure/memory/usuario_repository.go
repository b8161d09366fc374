package memory

import (
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// UsuarioRepository implementa repository.UsuarioRepository en memoria.
type UsuarioRepository struct {
	store *store[*entity.Usuario]
}

var _ repository.UsuarioRepository = (*UsuarioRepository)(nil)

// NewUsuarioRepository crea el repositorio vacío.
func NewUsuarioRepository() *UsuarioRepository {
	return &UsuarioRepository{store: newStore[*entity.Usuario]()}
}

func (r *UsuarioRepository) Guardar(usuario *entity.Usuario) error {
	r.store.guardar(usuario.ID, usuario)
	return nil
}

func (r *UsuarioRepository) ObtenerPorID(id string) (*entity.Usuario, error) {
	usuario, ok := r.store.obtener(id)
	if !ok {
		return nil, nil
	}
	return usuario, nil
}

func (r *UsuarioRepository) ListarTodos() ([]*entity.Usuario, error) {
	return r.store.listar(), nil
}
