package appointment

import "time"

// Horario de atención del taller: 9 a.m. a 7 p.m., todos los días.
// A diferencia de un negocio con turnos por día de semana, acá la
// ventana es fija y se valida al ingresar la cita.
const (
	OpenClock  = "09:00"
	CloseClock = "19:00"
)

// WithinWindow valida que una hora HH:MM caiga dentro del horario
// de atención, extremos incluidos.
func WithinWindow(clock string) bool {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return false
	}

	open, _ := time.Parse(ClockLayout, OpenClock)
	close, _ := time.Parse(ClockLayout, CloseClock)

	return !t.Before(open) && !t.After(close)
}
