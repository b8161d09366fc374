package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GuardarEsUpsert(t *testing.T) {
	s := newStore[string]()

	s.guardar("a", "primero")
	s.guardar("a", "segundo")

	v, ok := s.obtener("a")
	require.True(t, ok)
	assert.Equal(t, "segundo", v)
	assert.Len(t, s.listar(), 1)
}

func TestStore_ObtenerAusente(t *testing.T) {
	s := newStore[string]()

	_, ok := s.obtener("no-existe")
	assert.False(t, ok)
}

// El listado preserva el orden de primera inserción, incluso tras
// sobrescrituras.
func TestStore_ListarEnOrdenDeInsercion(t *testing.T) {
	s := newStore[string]()

	for i := 0; i < 5; i++ {
		s.guardar(fmt.Sprintf("id-%d", i), fmt.Sprintf("v%d", i))
	}
	s.guardar("id-0", "v0-bis")

	lista := s.listar()
	require.Len(t, lista, 5)
	assert.Equal(t, "v0-bis", lista[0])
	assert.Equal(t, "v4", lista[4])
}

func TestStore_ListarVacio(t *testing.T) {
	s := newStore[string]()
	assert.Empty(t, s.listar())
}
