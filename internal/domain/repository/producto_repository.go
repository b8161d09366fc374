package repository

import "github.com/vecindario/mercado-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Guardar(producto *entity.Producto) error
	ObtenerPorID(id string) (*entity.Producto, error)
	ListarTodos() ([]*entity.Producto, error)
}
