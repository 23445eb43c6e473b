package notify

import (
	"fmt"
	"net/url"
	"time"

	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/models"
)

// ===============================
// Google Calendar link
// ===============================

// Formato básico UTC que espera calendar/render (sin guiones ni dos puntos).
const calendarTimeLayout = "20060102T150405Z"

// CalendarLink arma el enlace "agregar a Google Calendar" de una cita
// recién confirmada. El evento dura una hora desde el turno de entrada.
func CalendarLink(ap *models.Appointment, shopLocation string, loc *time.Location) (string, error) {
	start, err := domain.ParseSlot(ap.AppointmentDate, ap.AppointmentTime, loc)
	if err != nil {
		return "", err
	}
	end := start.Add(time.Hour)

	details := fmt.Sprintf(
		"Cliente: %s\nTel: %s\nBici: %s\nNota: %s",
		ap.ClientName, ap.ClientPhone, ap.BikeType, ap.Notes,
	)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", "Cita Taller: "+ap.ServiceName)
	params.Set("dates", start.UTC().Format(calendarTimeLayout)+"/"+end.UTC().Format(calendarTimeLayout))
	params.Set("details", details)
	params.Set("location", shopLocation)

	return "https://www.google.com/calendar/render?" + params.Encode(), nil
}
