package notify

import (
	"fmt"
	"net/url"

	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/models"
	"github.com/bicicolombia/taller-scheduler/internal/validators"
)

// ===============================
// WhatsApp deep links
// ===============================

// Intent escoge la plantilla del mensaje prellenado.
type Intent string

const (
	IntentInfo       Intent = "info"
	IntentConfirm    Intent = "confirm"
	IntentReschedule Intent = "reschedule"
)

func ValidIntent(i Intent) bool {
	switch i {
	case IntentInfo, IntentConfirm, IntentReschedule:
		return true
	}
	return false
}

// WhatsAppLink construye el enlace wa.me hacia el cliente de la cita,
// con el mensaje según la intención. El envío es siempre manual: el
// staff abre el enlace, el sistema nunca manda mensajes solo.
func WhatsAppLink(intent Intent, ap *models.Appointment) string {
	phone := validators.NormalizePhone(ap.ClientPhone)
	if phone == "" {
		return ""
	}

	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		phone,
		url.QueryEscape(messageFor(intent, ap)),
	)
}

func messageFor(intent Intent, ap *models.Appointment) string {
	name := firstName(ap.ClientName)

	switch intent {
	case IntentConfirm:
		msg := fmt.Sprintf(
			"Hola %s! Tu cita en Bicicolombia quedó confirmada para el %s a las %s. Servicios: %s.",
			name, ap.AppointmentDate, ap.AppointmentTime, ap.ServiceName,
		)
		if ap.DeliveryDate != "" {
			msg += fmt.Sprintf(" Entrega estimada: %s a las %s.", ap.DeliveryDate, ap.DeliveryTime)
		}
		return msg

	case IntentReschedule:
		msg := fmt.Sprintf(
			"Hola %s, tu cita en Bicicolombia fue reprogramada para el %s a las %s. Servicios: %s.",
			name, ap.AppointmentDate, ap.AppointmentTime, ap.ServiceName,
		)
		if ap.DeliveryDate != "" {
			msg += fmt.Sprintf(" Nueva entrega estimada: %s a las %s.", ap.DeliveryDate, ap.DeliveryTime)
		}
		msg += " Si el horario no te sirve, respóndenos por acá."
		return msg

	default:
		return fmt.Sprintf(
			"Hola %s, te escribimos de Bicicolombia por tu cita del %s a las %s (%s).",
			name, ap.AppointmentDate, ap.AppointmentTime, ap.ServiceName,
		)
	}
}

func firstName(full string) string {
	capitalized := domain.CapitalizeName(full)
	for i, r := range capitalized {
		if r == ' ' {
			return capitalized[:i]
		}
	}
	return capitalized
}
