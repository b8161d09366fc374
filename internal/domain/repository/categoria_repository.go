package repository

import "github.com/vecindario/mercado-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Guardar(categoria *entity.Categoria) error
	ObtenerPorID(id string) (*entity.Categoria, error)
	ListarTodos() ([]*entity.Categoria, error)
}
