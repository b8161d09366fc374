package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/vecindario/mercado-api/internal/domain"
)

// Estados posibles de una consulta.
const (
	ConsultaPendiente  = "pendiente"  // consulta enviada
	ConsultaContactado = "contactado" // el vendedor ya contactó o respondió
	ConsultaCerrada    = "cerrada"    // el ciclo de contacto terminó
)

// Consulta registra el interés de un comprador en un producto o servicio.
// No implica transacción, solo facilita la conexión entre vecinos.
type Consulta struct {
	ID        string
	Comprador *Usuario
	Item      Listing
	Mensaje   string // opcional
	Fecha     time.Time
	Estado    string
}

// NewConsulta valida y construye la consulta en estado pendiente.
func NewConsulta(id string, comprador *Usuario, item Listing, mensaje string) (*Consulta, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: el ID de la consulta no puede estar vacío", domain.ErrValidacion)
	}
	if comprador == nil {
		return nil, fmt.Errorf("%w: la consulta debe tener un comprador", domain.ErrValidacion)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: la consulta debe referirse a un producto o servicio", domain.ErrValidacion)
	}
	return &Consulta{
		ID:        strings.TrimSpace(id),
		Comprador: comprador,
		Item:      item,
		Mensaje:   strings.TrimSpace(mensaje),
		Fecha:     time.Now(),
		Estado:    ConsultaPendiente,
	}, nil
}

// MarcarContactado registra que el propietario del listado ya respondió.
func (c *Consulta) MarcarContactado() { c.Estado = ConsultaContactado }

// Cerrar termina el ciclo de contacto.
func (c *Consulta) Cerrar() { c.Estado = ConsultaCerrada }

func (c *Consulta) String() string {
	return fmt.Sprintf("Consulta #%s - %s interesada en '%s' [%s]",
		c.ID, c.Comprador.Nombre, c.Item.ListingNombre(), c.Estado)
}
