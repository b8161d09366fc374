package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes con detalle
// de campo envuelven estos centinelas con fmt.Errorf("%w: ...") para que
// las capas superiores puedan clasificar con errors.Is.
var (
	ErrValidacion   = errors.New("error de validación")
	ErrPermiso      = errors.New("permiso denegado")
	ErrNoEncontrado = errors.New("recurso no encontrado")
	ErrYaExiste     = errors.New("el recurso ya existe")
)
