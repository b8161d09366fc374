package service

import (
	"fmt"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
	"github.com/vecindario/mercado-api/internal/domain/repository"
	"github.com/vecindario/mercado-api/pkg/logger"
)

// EstadoAprobado es el estado de autorización que habilita publicar.
// Lo suministra el llamador; el núcleo no almacena estados de aprobación.
const EstadoAprobado = "APPROVED"

// PublicacionService orquesta el flujo de publicación de productos:
// resolución de referencias, chequeo de permisos, construcción vía builder,
// persistencia y notificación.
type PublicacionService struct {
	productoRepo  repository.ProductoRepository
	usuarioRepo   repository.UsuarioRepository
	categoriaRepo repository.CategoriaRepository
	notifier      Notifier
	maxImagenes   int
	log           *logger.Logger
}

// NewPublicacionService construye el servicio. maxImagenes <= 0 usa el
// valor por defecto del builder.
func NewPublicacionService(
	productoRepo repository.ProductoRepository,
	usuarioRepo repository.UsuarioRepository,
	categoriaRepo repository.CategoriaRepository,
	notifier Notifier,
	maxImagenes int,
	log *logger.Logger,
) *PublicacionService {
	if maxImagenes <= 0 {
		maxImagenes = entity.MaxImagenesPublicacion
	}
	return &PublicacionService{
		productoRepo:  productoRepo,
		usuarioRepo:   usuarioRepo,
		categoriaRepo: categoriaRepo,
		notifier:      notifier,
		maxImagenes:   maxImagenes,
		log:           log,
	}
}

// PublicarProducto publica un producto en el marketplace.
//
// El orden de chequeos es contractual: primero vendedor, luego categoría,
// luego permiso. Las URLs de imagen que exceden el máximo configurado se
// descartan en silencio. La notificación es fire-and-forget: su falla se
// registra y no afecta la publicación.
func (s *PublicacionService) PublicarProducto(cmd dto.PublicarProductoCommand) (*entity.Producto, error) {
	vendedor, err := s.usuarioRepo.ObtenerPorID(cmd.VendedorID)
	if err != nil {
		return nil, err
	}
	if vendedor == nil {
		return nil, fmt.Errorf("%w: vendedor con id %s no encontrado", domain.ErrNoEncontrado, cmd.VendedorID)
	}

	categoria, err := s.categoriaRepo.ObtenerPorID(cmd.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, fmt.Errorf("%w: categoría con id %s no encontrada", domain.ErrNoEncontrado, cmd.CategoriaID)
	}

	if cmd.VendedorStatus != EstadoAprobado {
		return nil, fmt.Errorf("%w: solo usuarios APPROVED pueden publicar", domain.ErrPermiso)
	}

	builder := entity.NewProductoBuilder(s.maxImagenes).
		Vendedor(vendedor).
		Categoria(categoria).
		Nombre(cmd.Nombre).
		Descripcion(cmd.Descripcion).
		PrecioCOP(cmd.PrecioCOP)

	imagenes := cmd.Imagenes
	if len(imagenes) > s.maxImagenes {
		imagenes = imagenes[:s.maxImagenes]
	}
	for _, url := range imagenes {
		if err := builder.AddImagen(url); err != nil {
			return nil, err
		}
	}

	producto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	if err := s.productoRepo.Guardar(producto); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyListingCreated(vendedor.Telefono, producto.Nombre); err != nil {
		s.log.Warn().Err(err).Str("producto_id", producto.ID).Msg("falló la notificación de publicación")
	}

	return producto, nil
}

// ListarProductos devuelve todos los productos publicados.
func (s *PublicacionService) ListarProductos() ([]*entity.Producto, error) {
	return s.productoRepo.ListarTodos()
}
