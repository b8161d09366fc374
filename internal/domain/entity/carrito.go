package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemCarrito es una línea del carrito: un producto o servicio con cantidad.
type ItemCarrito struct {
	Item     Listing
	Cantidad int
}

// Subtotal de la línea al precio actual del listado.
func (ic ItemCarrito) Subtotal() decimal.Decimal {
	return ic.Item.ListingPrecio().Mul(decimal.NewFromInt(int64(ic.Cantidad)))
}

func (ic ItemCarrito) String() string {
	return fmt.Sprintf("%s x%d = $%s", ic.Item.ListingNombre(), ic.Cantidad, ic.Subtotal().StringFixed(0))
}

// Carrito es el área de preparación de compras de un usuario: listados con
// cantidad, previo a formalizar una transacción.
type Carrito struct {
	Usuario *Usuario
	Items   []ItemCarrito
}

// NewCarrito crea un carrito vacío para el usuario.
func NewCarrito(usuario *Usuario) *Carrito {
	return &Carrito{Usuario: usuario}
}

// Agregar suma el item al carrito. Si ya existe una línea con el mismo ID y
// el mismo tipo (producto vs servicio) fusiona las cantidades; un producto
// y un servicio que comparten ID nunca se fusionan.
func (c *Carrito) Agregar(item Listing, cantidad int) {
	if cantidad <= 0 {
		cantidad = 1
	}
	for i := range c.Items {
		if c.Items[i].Item.ListingID() == item.ListingID() && c.Items[i].Item.Tipo() == item.Tipo() {
			c.Items[i].Cantidad += cantidad
			return
		}
	}
	c.Items = append(c.Items, ItemCarrito{Item: item, Cantidad: cantidad})
}

// Quitar elimina la línea que coincide en ID y tipo. Retorna si eliminó.
func (c *Carrito) Quitar(item Listing) bool {
	for i := range c.Items {
		if c.Items[i].Item.ListingID() == item.ListingID() && c.Items[i].Item.Tipo() == item.Tipo() {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Total suma los subtotales de todas las líneas.
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ic := range c.Items {
		total = total.Add(ic.Subtotal())
	}
	return total
}

// Vaciar elimina todas las líneas.
func (c *Carrito) Vaciar() { c.Items = nil }

func (c *Carrito) String() string {
	if len(c.Items) == 0 {
		return fmt.Sprintf("Carrito de %s: vacío", c.Usuario.Nombre)
	}
	return fmt.Sprintf("Carrito de %s: %d items - Total: $%s",
		c.Usuario.Nombre, len(c.Items), c.Total().StringFixed(0))
}
