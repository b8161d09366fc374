package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindario/mercado-api/internal/domain"
	"github.com/vecindario/mercado-api/internal/domain/entity"
)

// El email se normaliza a minúsculas y el teléfono queda solo con dígitos.
func TestNewUsuario_Normalizacion(t *testing.T) {
	u, err := entity.NewUsuario("u-1", "  María García  ", " Maria@Email.COM ", " 0101 ", "(300) 111-2233")
	require.NoError(t, err)

	assert.Equal(t, "María García", u.Nombre)
	assert.Equal(t, "maria@email.com", u.Email)
	assert.Equal(t, "0101", u.Apartamento)
	assert.Equal(t, "3001112233", u.Telefono)
}

func TestNewUsuario_TelefonoYApartamentoOpcionales(t *testing.T) {
	u, err := entity.NewUsuario("u-2", "Carlos", "carlos@email.com", "", "")
	require.NoError(t, err)
	assert.Empty(t, u.Telefono)
	assert.Empty(t, u.Apartamento)
}

func TestNewUsuario_Rechazos(t *testing.T) {
	casos := []struct {
		nombre                               string
		id, nom, email, apartamento, telefono string
	}{
		{"id vacío", "", "María", "maria@email.com", "", ""},
		{"nombre vacío", "u-1", "   ", "maria@email.com", "", ""},
		{"nombre muy corto", "u-1", "M", "maria@email.com", "", ""},
		{"email vacío", "u-1", "María", "", "", ""},
		{"email inválido", "u-1", "María", "maria-arroba-email", "", ""},
		{"teléfono corto", "u-1", "María", "maria@email.com", "", "12345"},
		{"teléfono largo", "u-1", "María", "maria@email.com", "", "300111223344"},
		{"apartamento muy largo", "u-1", "María", "maria@email.com", "torre 5 apartamento 1201B", ""},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := entity.NewUsuario(c.id, c.nom, c.email, c.apartamento, c.telefono)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidacion)
		})
	}
}
