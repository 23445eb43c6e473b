package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/bicicolombia/taller-scheduler/internal/catalog"
	"github.com/bicicolombia/taller-scheduler/internal/models"
)

// ===============================
// Calendar Events (derivados)
// ===============================

type EventType string

const (
	EventEntry EventType = "entry"
	EventExit  EventType = "exit"
)

// Duración visual de cada evento en el calendario.
const eventDuration = time.Hour

// CalendarEvent nunca se persiste: se regenera en cada lectura a partir
// de las citas confirmadas.
type CalendarEvent struct {
	Title         string    `json:"title"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Type          EventType `json:"type"`
	AppointmentID uint      `json:"appointment_id"`
	Details       string    `json:"details"`
}

// EventsFor deriva el par entrada/entrega de una cita. La entrada es el
// turno agendado; la entrega usa los campos persistidos o, en filas
// antiguas sin entrega, el estimador.
func EventsFor(ap *models.Appointment, loc *time.Location) ([]CalendarEvent, error) {
	start, err := ParseSlot(ap.AppointmentDate, ap.AppointmentTime, loc)
	if err != nil {
		return nil, err
	}

	exit, err := deliveryInstant(ap, start, loc)
	if err != nil {
		return nil, err
	}

	serviceCount := len(catalog.SplitIDs(ap.ServiceID))
	name := CapitalizeName(ap.ClientName)

	entry := CalendarEvent{
		Title:         "Entrada: " + name,
		Start:         start,
		End:           start.Add(eventDuration),
		Type:          EventEntry,
		AppointmentID: ap.ID,
		Details:       fmt.Sprintf("%d servicios: %s", serviceCount, ap.ServiceName),
	}

	exitEvent := CalendarEvent{
		Title:         "Entrega: " + name,
		Start:         exit,
		End:           exit.Add(eventDuration),
		Type:          EventExit,
		AppointmentID: ap.ID,
		Details:       "Entrega estimada. Cliente: " + ap.ClientPhone,
	}

	return []CalendarEvent{entry, exitEvent}, nil
}

func deliveryInstant(ap *models.Appointment, start time.Time, loc *time.Location) (time.Time, error) {
	if ap.DeliveryDate != "" && ap.DeliveryTime != "" {
		return ParseSlot(ap.DeliveryDate, ap.DeliveryTime, loc)
	}
	return EstimateDelivery(start, catalog.SplitIDs(ap.ServiceID)), nil
}

// CapitalizeName normaliza "juan PÉREZ" → "Juan Pérez" para los títulos.
func CapitalizeName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
