package service

import (
	"fmt"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// UsuarioService orquesta el ciclo de vida de los residentes.
type UsuarioService struct {
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioService construye el servicio.
func NewUsuarioService(usuarioRepo repository.UsuarioRepository) *UsuarioService {
	return &UsuarioService{usuarioRepo: usuarioRepo}
}

// CrearUsuario crea un residente nuevo. Falla con ErrYaExiste si el ID ya
// está registrado; la validación de campos ocurre en la entidad.
func (s *UsuarioService) CrearUsuario(cmd dto.CrearUsuarioCommand) (*entity.Usuario, error) {
	existente, err := s.usuarioRepo.ObtenerPorID(cmd.ID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: usuario con id %s ya existe", domain.ErrYaExiste, cmd.ID)
	}

	usuario, err := entity.NewUsuario(cmd.ID, cmd.Nombre, cmd.Email, cmd.Apartamento, cmd.Telefono)
	if err != nil {
		return nil, err
	}

	if err := s.usuarioRepo.Guardar(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// ListarUsuarios devuelve todos los residentes en orden de registro.
func (s *UsuarioService) ListarUsuarios() ([]*entity.Usuario, error) {
	return s.usuarioRepo.ListarTodos()
}
