package entity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vecindario/mercado-api/internal/domain"
)

var (
	reEmail    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	reNoDigito = regexp.MustCompile(`\D`)
)

// Usuario representa un residente que puede vender productos, ofrecer
// servicios y comprar dentro de su unidad residencial.
// Inmutable después de construido; la normalización ocurre en NewUsuario.
type Usuario struct {
	ID          string
	Nombre      string // 2-100 caracteres, sin espacios sobrantes
	Email       string // normalizado a minúsculas
	Apartamento string // opcional, máximo 20 caracteres; "" = sin apto
	Telefono    string // opcional, exactamente 10 dígitos; "" = sin teléfono
}

// NewUsuario valida y normaliza los datos del residente.
// Apartamento y telefono son opcionales: cadena vacía significa ausente.
func NewUsuario(id, nombre, email, apartamento, telefono string) (*Usuario, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: el ID del usuario no puede estar vacío", domain.ErrValidacion)
	}

	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre del usuario no puede estar vacío", domain.ErrValidacion)
	}
	if len([]rune(nombre)) < 2 {
		return nil, fmt.Errorf("%w: el nombre debe tener al menos 2 caracteres", domain.ErrValidacion)
	}
	if len([]rune(nombre)) > 100 {
		return nil, fmt.Errorf("%w: el nombre no puede exceder 100 caracteres", domain.ErrValidacion)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: el email no puede estar vacío", domain.ErrValidacion)
	}
	if !reEmail.MatchString(email) {
		return nil, fmt.Errorf("%w: email inválido: %s", domain.ErrValidacion, email)
	}
	email = strings.ToLower(email)

	if telefono != "" {
		digitos := reNoDigito.ReplaceAllString(strings.TrimSpace(telefono), "")
		if len(digitos) != 10 {
			return nil, fmt.Errorf("%w: el teléfono debe tener exactamente 10 dígitos, recibido: %s",
				domain.ErrValidacion, strings.TrimSpace(telefono))
		}
		telefono = digitos
	}

	apartamento = strings.TrimSpace(apartamento)
	if len([]rune(apartamento)) > 20 {
		return nil, fmt.Errorf("%w: el apartamento no puede exceder 20 caracteres", domain.ErrValidacion)
	}

	return &Usuario{
		ID:          strings.TrimSpace(id),
		Nombre:      nombre,
		Email:       email,
		Apartamento: apartamento,
		Telefono:    telefono,
	}, nil
}

func (u *Usuario) String() string {
	apto := u.Apartamento
	if apto == "" {
		apto = "Sin apto"
	}
	return fmt.Sprintf("%s (%s)", u.Nombre, apto)
}
