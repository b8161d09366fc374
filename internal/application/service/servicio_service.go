package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
	"github.com/vecindario/mercado-api/pkg/logger"
)

// ServicioService orquesta la publicación de servicios. A diferencia de los
// productos no pasa por un builder: la entidad valida directamente.
type ServicioService struct {
	servicioRepo  repository.ServicioRepository
	usuarioRepo   repository.UsuarioRepository
	categoriaRepo repository.CategoriaRepository
	notifier      Notifier
	log           *logger.Logger
}

// NewServicioService construye el servicio.
func NewServicioService(
	servicioRepo repository.ServicioRepository,
	usuarioRepo repository.UsuarioRepository,
	categoriaRepo repository.CategoriaRepository,
	notifier Notifier,
	log *logger.Logger,
) *ServicioService {
	return &ServicioService{
		servicioRepo:  servicioRepo,
		usuarioRepo:   usuarioRepo,
		categoriaRepo: categoriaRepo,
		notifier:      notifier,
		log:           log,
	}
}

// PublicarServicio publica un servicio. Mismo orden de chequeos que la
// publicación de productos: proveedor, categoría, permiso. El servicio
// nace disponible.
func (s *ServicioService) PublicarServicio(cmd dto.PublicarServicioCommand) (*entity.Servicio, error) {
	proveedor, err := s.usuarioRepo.ObtenerPorID(cmd.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, fmt.Errorf("%w: proveedor con id %s no encontrado", domain.ErrNoEncontrado, cmd.ProveedorID)
	}

	categoria, err := s.categoriaRepo.ObtenerPorID(cmd.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, fmt.Errorf("%w: categoría con id %s no encontrada", domain.ErrNoEncontrado, cmd.CategoriaID)
	}

	if cmd.ProveedorStatus != EstadoAprobado {
		return nil, fmt.Errorf("%w: solo usuarios APPROVED pueden publicar", domain.ErrPermiso)
	}

	servicio, err := entity.NewServicio(
		uuid.New().String(),
		cmd.Nombre,
		decimal.NewFromInt(cmd.PrecioCOP),
		proveedor,
		cmd.Descripcion,
		categoria,
	)
	if err != nil {
		return nil, err
	}

	if err := s.servicioRepo.Guardar(servicio); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyListingCreated(proveedor.Telefono, servicio.Nombre); err != nil {
		s.log.Warn().Err(err).Str("servicio_id", servicio.ID).Msg("falló la notificación de publicación")
	}

	return servicio, nil
}

// ListarServicios devuelve todos los servicios publicados.
func (s *ServicioService) ListarServicios() ([]*entity.Servicio, error) {
	return s.servicioRepo.ListarTodos()
}
