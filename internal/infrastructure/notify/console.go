// Package notify implementa el colaborador de notificaciones. La versión de
// consola escribe en el log estructurado; un adaptador real (SMS, correo)
// implementaría la misma interfaz.
package notify

import (
	"github.com/vecindario/mercado-api/internal/application/service"
	"github.com/vecindario/mercado-api/pkg/logger"
)

// ConsoleNotifier registra las notificaciones en el log.
type ConsoleNotifier struct {
	log *logger.Logger
}

var _ service.Notifier = (*ConsoleNotifier)(nil)

// NewConsoleNotifier construye el notificador de consola.
func NewConsoleNotifier(log *logger.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{log: log}
}

// NotifyListingCreated anuncia al teléfono del propietario que su
// publicación quedó creada.
func (n *ConsoleNotifier) NotifyListingCreated(telefono, titulo string) error {
	n.log.Info().
		Str("telefono", telefono).
		Str("titulo", titulo).
		Msg("publicación creada")
	return nil
}
