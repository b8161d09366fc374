package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
)

// ConsultaService orquesta el registro y la consulta de intereses de
// compra sobre productos y servicios.
type ConsultaService struct {
	consultaRepo repository.ConsultaRepository
	usuarioRepo  repository.UsuarioRepository
	productoRepo repository.ProductoRepository
	servicioRepo repository.ServicioRepository
}

// NewConsultaService construye el servicio.
func NewConsultaService(
	consultaRepo repository.ConsultaRepository,
	usuarioRepo repository.UsuarioRepository,
	productoRepo repository.ProductoRepository,
	servicioRepo repository.ServicioRepository,
) *ConsultaService {
	return &ConsultaService{
		consultaRepo: consultaRepo,
		usuarioRepo:  usuarioRepo,
		productoRepo: productoRepo,
		servicioRepo: servicioRepo,
	}
}

// RegistrarConsulta registra el interés de un comprador en un listado.
// El discriminador item_type decide en qué repositorio se busca el item.
func (s *ConsultaService) RegistrarConsulta(cmd dto.RegistrarConsultaCommand) (*entity.Consulta, error) {
	comprador, err := s.usuarioRepo.ObtenerPorID(cmd.CompradorID)
	if err != nil {
		return nil, err
	}
	if comprador == nil {
		return nil, fmt.Errorf("%w: comprador con id %s no encontrado", domain.ErrNoEncontrado, cmd.CompradorID)
	}

	item, err := s.resolverItem(cmd.ItemID, cmd.ItemType)
	if err != nil {
		return nil, err
	}

	id := "con-" + uuid.New().String()[:8]
	consulta, err := entity.NewConsulta(id, comprador, item, cmd.Mensaje)
	if err != nil {
		return nil, err
	}

	if err := s.consultaRepo.Guardar(consulta); err != nil {
		return nil, err
	}
	return consulta, nil
}

func (s *ConsultaService) resolverItem(itemID, itemType string) (entity.Listing, error) {
	switch entity.TipoListing(itemType) {
	case entity.TipoProducto:
		producto, err := s.productoRepo.ObtenerPorID(itemID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, fmt.Errorf("%w: producto con id %s no encontrado", domain.ErrNoEncontrado, itemID)
		}
		return producto, nil
	case entity.TipoServicio:
		servicio, err := s.servicioRepo.ObtenerPorID(itemID)
		if err != nil {
			return nil, err
		}
		if servicio == nil {
			return nil, fmt.Errorf("%w: servicio con id %s no encontrado", domain.ErrNoEncontrado, itemID)
		}
		return servicio, nil
	default:
		return nil, fmt.Errorf("%w: item_type debe ser 'producto' o 'servicio', recibido: %s",
			domain.ErrValidacion, itemType)
	}
}

// ListarConsultasVendedor devuelve las consultas cuyos items pertenecen al
// vendedor o proveedor indicado.
func (s *ConsultaService) ListarConsultasVendedor(vendedorID string) ([]*entity.Consulta, error) {
	todas, err := s.consultaRepo.ListarTodos()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Consulta, 0, len(todas))
	for _, c := range todas {
		if c.Item.PropietarioID() == vendedorID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListarConsultasComprador devuelve las consultas hechas por el comprador.
func (s *ConsultaService) ListarConsultasComprador(compradorID string) ([]*entity.Consulta, error) {
	todas, err := s.consultaRepo.ListarTodos()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Consulta, 0, len(todas))
	for _, c := range todas {
		if c.Comprador.ID == compradorID {
			out = append(out, c)
		}
	}
	return out, nil
}
