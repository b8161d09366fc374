package service

import (
	"fmt"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// UnidadResidencialService orquesta el ciclo de vida de las unidades.
type UnidadResidencialService struct {
	unidadRepo repository.UnidadResidencialRepository
}

// NewUnidadResidencialService construye el servicio.
func NewUnidadResidencialService(unidadRepo repository.UnidadResidencialRepository) *UnidadResidencialService {
	return &UnidadResidencialService{unidadRepo: unidadRepo}
}

// CrearUnidad crea una unidad residencial nueva. Falla con ErrYaExiste si
// el ID ya está registrado.
func (s *UnidadResidencialService) CrearUnidad(cmd dto.CrearUnidadResidencialCommand) (*entity.UnidadResidencial, error) {
	existente, err := s.unidadRepo.ObtenerPorID(cmd.ID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: unidad con id %s ya existe", domain.ErrYaExiste, cmd.ID)
	}

	unidad, err := entity.NewUnidadResidencial(cmd.ID, cmd.Nombre, cmd.Direccion)
	if err != nil {
		return nil, err
	}

	if err := s.unidadRepo.Guardar(unidad); err != nil {
		return nil, err
	}
	return unidad, nil
}

// ListarUnidades devuelve todas las unidades en orden de registro.
func (s *UnidadResidencialService) ListarUnidades() ([]*entity.UnidadResidencial, error) {
	return s.unidadRepo.ListarTodos()
}
