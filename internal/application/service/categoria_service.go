package service

import (
	"fmt"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// CategoriaService orquesta el ciclo de vida de las categorías.
type CategoriaService struct {
	categoriaRepo repository.CategoriaRepository
}

// NewCategoriaService construye el servicio.
func NewCategoriaService(categoriaRepo repository.CategoriaRepository) *CategoriaService {
	return &CategoriaService{categoriaRepo: categoriaRepo}
}

// CrearCategoria crea una categoría nueva. Falla con ErrYaExiste si el ID
// ya está registrado.
func (s *CategoriaService) CrearCategoria(cmd dto.CrearCategoriaCommand) (*entity.Categoria, error) {
	existente, err := s.categoriaRepo.ObtenerPorID(cmd.ID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: categoría con id %s ya existe", domain.ErrYaExiste, cmd.ID)
	}

	categoria, err := entity.NewCategoria(cmd.ID, cmd.Nombre, cmd.Descripcion)
	if err != nil {
		return nil, err
	}

	if err := s.categoriaRepo.Guardar(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// ListarCategorias devuelve todas las categorías en orden de registro.
func (s *CategoriaService) ListarCategorias() ([]*entity.Categoria, error) {
	return s.categoriaRepo.ListarTodos()
}
