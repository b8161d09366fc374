package repository

import "github.com/vecindario/mercado-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Guardar es un upsert idempotente por ID; la detección de duplicados es
// responsabilidad del servicio. ObtenerPorID devuelve (nil, nil) si no existe.
type UsuarioRepository interface {
	Guardar(usuario *entity.Usuario) error
	ObtenerPorID(id string) (*entity.Usuario, error)
	ListarTodos() ([]*entity.Usuario, error)
}
