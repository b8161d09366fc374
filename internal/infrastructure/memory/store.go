// Package memory implementa los puertos de persistencia sobre mapas en
// memoria de proceso. El almacenamiento es transitorio: no hay durabilidad
// ni recuperación ante caídas. Cada almacén serializa su propio acceso con
// un RWMutex porque el servidor HTTP atiende peticiones concurrentes.
package memory

import "sync"

// store es un almacén genérico por ID: upsert idempotente, lectura por ID y
// listado en orden de inserción.
type store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	orden []string // IDs en orden de primera inserción
}

func newStore[T any]() *store[T] {
	return &store[T]{items: make(map[string]T)}
}

func (s *store[T]) guardar(id string, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		s.orden = append(s.orden, id)
	}
	s.items[id] = item
}

func (s *store[T]) obtener(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

func (s *store[T]) listar() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.orden))
	for _, id := range s.orden {
		out = append(out, s.items[id])
	}
	return out
}
