package entity

import "github.com/shopspring/decimal"

// TipoListing discrimina las dos variantes publicables del marketplace.
type TipoListing string

const (
	TipoProducto TipoListing = "producto"
	TipoServicio TipoListing = "servicio"
)

// Listing es la vista común de un producto o servicio publicado.
// Sustituye la consulta dinámica de atributos vendedor/proveedor por un
// accesor uniforme PropietarioID.
type Listing interface {
	ListingID() string
	ListingNombre() string
	ListingPrecio() decimal.Decimal
	PropietarioID() string
	Tipo() TipoListing
}
