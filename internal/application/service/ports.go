package service

// Notifier es el colaborador de notificaciones invocado tras una
// publicación exitosa. El núcleo no inspecciona ni depende de su resultado.
type Notifier interface {
	NotifyListingCreated(telefono, titulo string) error
}
