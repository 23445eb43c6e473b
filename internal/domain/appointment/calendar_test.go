package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsFor(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusConfirmed)

	events, err := EventsFor(ap, bogota)
	require.NoError(t, err)
	require.Len(t, events, 2)

	entry, exit := events[0], events[1]

	assert.Equal(t, EventEntry, entry.Type)
	assert.Equal(t, "Entrada: María López", entry.Title)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 0, 0, 0, bogota), entry.Start)
	assert.Equal(t, entry.Start.Add(time.Hour), entry.End)
	assert.Equal(t, ap.ID, entry.AppointmentID)
	assert.Contains(t, entry.Details, "2 servicios")

	assert.Equal(t, EventExit, exit.Type)
	assert.Equal(t, "Entrega: María López", exit.Title)
	assert.Equal(t, time.Date(2024, 6, 11, 19, 0, 0, 0, bogota), exit.Start)
	assert.Contains(t, exit.Details, ap.ClientPhone)
}

func TestEventsForLegacyRowDerivesDelivery(t *testing.T) {
	ap := pendingAppointment()
	ap.DeliveryDate = ""
	ap.DeliveryTime = ""

	events, err := EventsFor(ap, bogota)
	require.NoError(t, err)

	// l1+m1 es mixta → entrega al día siguiente
	assert.Equal(t, time.Date(2024, 6, 11, 19, 0, 0, 0, bogota), events[1].Start)
	// y la fila no se toca
	assert.Empty(t, ap.DeliveryDate)
}

func TestEventsForRejectsCorruptSlot(t *testing.T) {
	ap := pendingAppointment()
	ap.AppointmentDate = "no-date"

	_, err := EventsFor(ap, bogota)
	assert.Error(t, err)
}

func TestCapitalizeName(t *testing.T) {
	assert.Equal(t, "Juan Pérez", CapitalizeName("juan PÉREZ"))
	assert.Equal(t, "Ana", CapitalizeName("  ana  "))
	assert.Equal(t, "", CapitalizeName(""))
}
