package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
)

// MercadoService es la fachada del agregado Marketplace de una unidad
// residencial: búsqueda de listados, carritos por usuario y formalización
// de compras como transacciones.
type MercadoService struct {
	marketplace *entity.Marketplace
}

// NewMercadoService crea la fachada sobre el marketplace de la unidad,
// creándolo si la unidad aún no tiene uno.
func NewMercadoService(unidad *entity.UnidadResidencial, nombre string) *MercadoService {
	mp := unidad.ObtenerMarketplace()
	if mp == nil {
		mp = unidad.CrearMarketplace(nombre)
	}
	return &MercadoService{marketplace: mp}
}

// Marketplace expone el agregado subyacente.
func (s *MercadoService) Marketplace() *entity.Marketplace { return s.marketplace }

// BuscarProductos delega en el agregado (filtros AND opcionales).
func (s *MercadoService) BuscarProductos(categoria *entity.Categoria, texto string) []*entity.Producto {
	return s.marketplace.BuscarProductos(categoria, texto)
}

// BuscarServicios delega en el agregado.
func (s *MercadoService) BuscarServicios(categoria *entity.Categoria, soloDisponibles bool) []*entity.Servicio {
	return s.marketplace.BuscarServicios(categoria, soloDisponibles)
}

// AgregarAlCarrito agrega el listado al carrito del usuario (cantidad <= 0
// cuenta como 1).
func (s *MercadoService) AgregarAlCarrito(usuario *entity.Usuario, item entity.Listing, cantidad int) {
	s.marketplace.ObtenerCarrito(usuario).Agregar(item, cantidad)
}

// QuitarDelCarrito elimina la línea del listado. Retorna si eliminó.
func (s *MercadoService) QuitarDelCarrito(usuario *entity.Usuario, item entity.Listing) bool {
	return s.marketplace.ObtenerCarrito(usuario).Quitar(item)
}

// VerCarrito devuelve el carrito del usuario, creándolo si no existe.
func (s *MercadoService) VerCarrito(usuario *entity.Usuario) *entity.Carrito {
	return s.marketplace.ObtenerCarrito(usuario)
}

// Checkout formaliza el carrito del usuario como una transacción pendiente:
// congela el precio unitario actual de cada listado, descuenta stock de los
// productos (los servicios no manejan stock), registra la transacción en el
// marketplace y vacía el carrito. Un carrito vacío es ErrValidacion; si un
// producto no tiene stock suficiente, nada se descuenta.
func (s *MercadoService) Checkout(usuario *entity.Usuario) (*entity.Transaccion, error) {
	carrito := s.marketplace.ObtenerCarrito(usuario)
	if len(carrito.Items) == 0 {
		return nil, fmt.Errorf("%w: el carrito está vacío", domain.ErrValidacion)
	}

	items := make([]entity.ItemTransaccion, 0, len(carrito.Items))
	for _, ic := range carrito.Items {
		it, err := entity.NewItemTransaccion(ic.Item, ic.Cantidad, ic.Item.ListingPrecio())
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	// Verificar stock antes de descontar para no dejar descuentos parciales.
	for _, it := range items {
		if p, ok := it.Item.(*entity.Producto); ok && p.Stock < it.Cantidad {
			return nil, fmt.Errorf("%w: stock insuficiente para %s, disponible: %d, solicitado: %d",
				domain.ErrValidacion, p.Nombre, p.Stock, it.Cantidad)
		}
	}

	transaccion, err := entity.NewTransaccion(uuid.New().String(), usuario, items)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		if p, ok := it.Item.(*entity.Producto); ok {
			if err := p.ReducirStock(it.Cantidad); err != nil {
				return nil, err
			}
		}
	}

	s.marketplace.RegistrarTransaccion(transaccion)
	carrito.Vaciar()
	return transaccion, nil
}
