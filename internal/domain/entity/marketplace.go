package entity

import (
	"fmt"
	"strings"
)

// Marketplace es el espacio de intercambio de una unidad residencial.
// Agregado clásico: posee directamente los listados, las categorías, los
// carritos por usuario y las transacciones registradas.
type Marketplace struct {
	ID                string
	Nombre            string
	UnidadResidencial *UnidadResidencial
	Productos         []*Producto
	Servicios         []*Servicio
	Categorias        []*Categoria
	Transacciones     []*Transaccion
	Carritos          map[string]*Carrito // usuario ID -> carrito
}

// NewMarketplace crea el marketplace vacío de una unidad.
func NewMarketplace(id, nombre string, unidad *UnidadResidencial) *Marketplace {
	return &Marketplace{
		ID:                id,
		Nombre:            nombre,
		UnidadResidencial: unidad,
		Carritos:          make(map[string]*Carrito),
	}
}

// RegistrarCategoria agrega la categoría si aún no está registrada.
func (m *Marketplace) RegistrarCategoria(categoria *Categoria) {
	for _, c := range m.Categorias {
		if c.ID == categoria.ID {
			return
		}
	}
	m.Categorias = append(m.Categorias, categoria)
}

// PublicarProducto agrega un producto al marketplace.
func (m *Marketplace) PublicarProducto(producto *Producto) {
	m.Productos = append(m.Productos, producto)
}

// PublicarServicio agrega un servicio al marketplace.
func (m *Marketplace) PublicarServicio(servicio *Servicio) {
	m.Servicios = append(m.Servicios, servicio)
}

// BuscarProductos filtra por categoría exacta y por texto (subcadena sin
// distinción de mayúsculas contra nombre o descripción). Ambos filtros son
// opcionales y se componen con semántica AND.
func (m *Marketplace) BuscarProductos(categoria *Categoria, texto string) []*Producto {
	resultados := make([]*Producto, 0, len(m.Productos))
	texto = strings.ToLower(texto)
	for _, p := range m.Productos {
		if categoria != nil && (p.Categoria == nil || p.Categoria.ID != categoria.ID) {
			continue
		}
		if texto != "" &&
			!strings.Contains(strings.ToLower(p.Nombre), texto) &&
			!strings.Contains(strings.ToLower(p.Descripcion), texto) {
			continue
		}
		resultados = append(resultados, p)
	}
	return resultados
}

// BuscarServicios filtra por categoría y, opcionalmente, solo disponibles.
func (m *Marketplace) BuscarServicios(categoria *Categoria, soloDisponibles bool) []*Servicio {
	resultados := make([]*Servicio, 0, len(m.Servicios))
	for _, s := range m.Servicios {
		if categoria != nil && (s.Categoria == nil || s.Categoria.ID != categoria.ID) {
			continue
		}
		if soloDisponibles && !s.Disponible {
			continue
		}
		resultados = append(resultados, s)
	}
	return resultados
}

// ObtenerCarrito devuelve el carrito del usuario, creándolo si no existe.
func (m *Marketplace) ObtenerCarrito(usuario *Usuario) *Carrito {
	carrito, ok := m.Carritos[usuario.ID]
	if !ok {
		carrito = NewCarrito(usuario)
		m.Carritos[usuario.ID] = carrito
	}
	return carrito
}

// RegistrarTransaccion anota una transacción formalizada.
func (m *Marketplace) RegistrarTransaccion(transaccion *Transaccion) {
	m.Transacciones = append(m.Transacciones, transaccion)
}

func (m *Marketplace) String() string {
	return fmt.Sprintf("Marketplace '%s' - %d productos, %d servicios",
		m.Nombre, len(m.Productos), len(m.Servicios))
}
