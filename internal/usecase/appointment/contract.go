package appointment

import "github.com/bicicolombia/taller-scheduler/internal/notify"

// Notifier es el canal de salida fire-and-forget hacia el webhook.
// La interfaz existe para poder capturar los envíos en los tests.
type Notifier interface {
	Dispatch(p notify.Payload)
}
