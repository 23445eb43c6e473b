package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bicicolombia/taller-scheduler/internal/httperr"
)

// businessMessages traduce los códigos de negocio a mensajes para el
// panel. El código viaja igual para que el front decida qué mostrar.
var businessMessages = map[string]string{
	"missing_fields":        "Faltan campos obligatorios.",
	"missing_services":      "Selecciona al menos un servicio.",
	"unknown_service":       "Servicio no encontrado en el catálogo.",
	"invalid_phone":         "Teléfono inválido.",
	"invalid_bike_type":     "Tipo de bicicleta inválido.",
	"invalid_date_or_time":  "Fecha u hora inválida.",
	"invalid_range":         "Rango de fechas inválido.",
	"outside_working_hours": "Fuera del horario de atención (9:00 a 19:00).",
	"appointment_not_found": "Cita no encontrada.",
	"invalid_state":         "La cita no admite esta acción en su estado actual.",
}

// writeBusinessError mapea un error de caso de uso a la respuesta HTTP.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Solicitud inválida."
	}

	switch code {
	case "appointment_not_found":
		httperr.NotFound(c, code, msg)
	case "invalid_state":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
