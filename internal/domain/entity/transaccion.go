package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vecindario/mercado-api/internal/domain"
)

// Estados posibles de una transacción. entregada y cancelada son terminales.
const (
	TransaccionPendiente  = "pendiente"
	TransaccionConfirmada = "confirmada"
	TransaccionEntregada  = "entregada"
	TransaccionCancelada  = "cancelada"
)

// ItemTransaccion es una línea comprada dentro de una transacción.
type ItemTransaccion struct {
	Item           Listing
	Cantidad       int             // > 0
	PrecioUnitario decimal.Decimal // > 0
}

// NewItemTransaccion valida y construye la línea.
func NewItemTransaccion(item Listing, cantidad int, precioUnitario decimal.Decimal) (ItemTransaccion, error) {
	if item == nil {
		return ItemTransaccion{}, fmt.Errorf("%w: el item de la transacción es requerido", domain.ErrValidacion)
	}
	if cantidad <= 0 {
		return ItemTransaccion{}, fmt.Errorf("%w: la cantidad debe ser mayor a 0, recibido: %d", domain.ErrValidacion, cantidad)
	}
	if !precioUnitario.IsPositive() {
		return ItemTransaccion{}, fmt.Errorf("%w: el precio unitario debe ser mayor a 0, recibido: %s", domain.ErrValidacion, precioUnitario)
	}
	return ItemTransaccion{Item: item, Cantidad: cantidad, PrecioUnitario: precioUnitario}, nil
}

// Subtotal de la línea (precio unitario por cantidad).
func (it ItemTransaccion) Subtotal() decimal.Decimal {
	return it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
}

// Transaccion es una compra formalizada entre un comprador y los
// propietarios de los listados. El total se recalcula siempre desde las
// líneas, nunca se almacena aparte.
type Transaccion struct {
	ID        string
	Comprador *Usuario
	Items     []ItemTransaccion
	Estado    string
	Fecha     time.Time
}

// NewTransaccion valida y construye la transacción en estado pendiente.
// Requiere al menos una línea y total > 0.
func NewTransaccion(id string, comprador *Usuario, items []ItemTransaccion) (*Transaccion, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: el ID de la transacción no puede estar vacío", domain.ErrValidacion)
	}
	if comprador == nil {
		return nil, fmt.Errorf("%w: la transacción debe tener un comprador", domain.ErrValidacion)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: la transacción debe tener al menos un item", domain.ErrValidacion)
	}
	t := &Transaccion{
		ID:        strings.TrimSpace(id),
		Comprador: comprador,
		Items:     append([]ItemTransaccion(nil), items...),
		Estado:    TransaccionPendiente,
		Fecha:     time.Now(),
	}
	if !t.Total().IsPositive() {
		return nil, fmt.Errorf("%w: el total de la transacción debe ser mayor a 0, total: %s", domain.ErrValidacion, t.Total())
	}
	return t, nil
}

// Total recalcula la suma de los subtotales de las líneas.
func (t *Transaccion) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range t.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Confirmar pasa la transacción de pendiente a confirmada.
func (t *Transaccion) Confirmar() error {
	if t.Estado != TransaccionPendiente {
		return fmt.Errorf("%w: solo se pueden confirmar transacciones pendientes, estado actual: %s",
			domain.ErrValidacion, t.Estado)
	}
	t.Estado = TransaccionConfirmada
	return nil
}

// MarcarEntregada pasa la transacción de confirmada a entregada.
func (t *Transaccion) MarcarEntregada() error {
	if t.Estado != TransaccionConfirmada {
		return fmt.Errorf("%w: solo se pueden entregar transacciones confirmadas, estado actual: %s",
			domain.ErrValidacion, t.Estado)
	}
	t.Estado = TransaccionEntregada
	return nil
}

// Cancelar es legal desde cualquier estado excepto entregada.
func (t *Transaccion) Cancelar() error {
	if t.Estado == TransaccionEntregada {
		return fmt.Errorf("%w: no se pueden cancelar transacciones entregadas", domain.ErrValidacion)
	}
	t.Estado = TransaccionCancelada
	return nil
}

func (t *Transaccion) String() string {
	return fmt.Sprintf("Transacción #%s - %s - $%s [%s]",
		t.ID, t.Comprador.Nombre, t.Total().StringFixed(2), t.Estado)
}
