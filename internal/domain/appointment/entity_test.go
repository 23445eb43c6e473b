package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bicicolombia/taller-scheduler/internal/httperr"
	"github.com/bicicolombia/taller-scheduler/internal/models"
)

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:              1,
		ClientName:      "maría lópez",
		ClientPhone:     "3001234567",
		ServiceID:       "l1,m1",
		ServiceName:     "Despinchada + Mto. Sencillo Gama 1",
		AppointmentDate: "2024-06-10",
		AppointmentTime: "09:00",
		DeliveryDate:    "2024-06-11",
		DeliveryTime:    "19:00",
		Status:          string(StatusPending),
	}
}

func TestConfirm(t *testing.T) {
	ap := pendingAppointment()

	require.NoError(t, Confirm(ap, bogota))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	// la entrega ya persistida no se recalcula
	assert.Equal(t, "2024-06-11", ap.DeliveryDate)
}

func TestConfirmBackfillsMissingDelivery(t *testing.T) {
	ap := pendingAppointment()
	ap.DeliveryDate = ""
	ap.DeliveryTime = ""

	require.NoError(t, Confirm(ap, bogota))

	assert.Equal(t, "2024-06-11", ap.DeliveryDate, "l1+m1 es selección mixta")
	assert.Equal(t, "19:00", ap.DeliveryTime)
}

func TestConfirmRejectsNonPending(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusCancelled)

	err := Confirm(ap, bogota)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancel(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusConfirmed)

	require.NoError(t, Cancel(ap))
	assert.Equal(t, string(StatusCancelled), ap.Status)

	// cancelada es terminal
	err := Cancel(ap)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestRescheduleRecomputesDelivery(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusConfirmed)

	require.NoError(t, Reschedule(ap, "2024-06-12", "10:00", DeliveryComputed(), bogota))

	assert.Equal(t, "2024-06-12", ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.Equal(t, "2024-06-13", ap.DeliveryDate)
	assert.Equal(t, "19:00", ap.DeliveryTime)
	assert.Equal(t, string(StatusPending), ap.Status, "vuelve a pendiente")
}

func TestRescheduleKeepsManualDelivery(t *testing.T) {
	ap := pendingAppointment()

	override := DeliveryOverridden("2024-06-20", "16:30")
	require.NoError(t, Reschedule(ap, "2024-06-12", "10:00", override, bogota))

	// se guarda tal cual, sin pasar por el estimador
	assert.Equal(t, "2024-06-20", ap.DeliveryDate)
	assert.Equal(t, "16:30", ap.DeliveryTime)
}

func TestRescheduleValidations(t *testing.T) {
	ap := pendingAppointment()

	err := Reschedule(ap, "2024-06-12", "20:00", DeliveryComputed(), bogota)
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))

	err = Reschedule(ap, "12/06/2024", "10:00", DeliveryComputed(), bogota)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	ap.Status = string(StatusCancelled)
	err = Reschedule(ap, "2024-06-12", "10:00", DeliveryComputed(), bogota)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestRescheduleAllowedFromCompleted(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusCompleted)

	require.NoError(t, Reschedule(ap, "2024-06-12", "10:00", DeliveryComputed(), bogota))
	assert.Equal(t, string(StatusPending), ap.Status)
}
