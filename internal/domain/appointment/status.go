package appointment

import "github.com/bicicolombia/taller-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus acepta también "completed": ninguna transición del sistema
// lo produce, pero llega por vías manuales y la lectura debe tolerarlo.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// State machine
// ===============================

type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
)

// CanTransition centraliza las reglas de estado que antes vivían
// regadas en cada handler.
func CanTransition(current Status, a Action) bool {
	switch a {
	case ActionConfirm:
		return current == StatusPending
	case ActionCancel:
		// cancelled es terminal
		return current != StatusCancelled
	case ActionReschedule:
		// reprogramar se permite incluso desde completed
		return current != StatusCancelled
	}
	return false
}

// Apply devuelve el estado siguiente, o invalid_state si la acción
// no está permitida desde el estado actual.
func Apply(current Status, a Action) (Status, error) {
	if !CanTransition(current, a) {
		return current, httperr.ErrBusiness("invalid_state")
	}

	switch a {
	case ActionConfirm:
		return StatusConfirmed, nil
	case ActionCancel:
		return StatusCancelled, nil
	case ActionReschedule:
		// toda reprogramación vuelve a pendiente: el nuevo turno
		// requiere confirmación del taller
		return StatusPending, nil
	}

	return current, httperr.ErrBusiness("invalid_state")
}

// InitialStatus: la auto-agenda del cliente entra pendiente,
// la cita física creada por el taller nace confirmada.
func InitialStatus(walkIn bool) Status {
	if walkIn {
		return StatusConfirmed
	}
	return StatusPending
}
