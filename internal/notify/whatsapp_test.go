package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bicicolombia/taller-scheduler/internal/models"
)

func sampleAppointment() *models.Appointment {
	return &models.Appointment{
		ID:              7,
		ClientName:      "carlos gómez",
		ClientPhone:     "300 123 4567",
		BikeType:        "MTB",
		ServiceID:       "l1",
		ServiceName:     "Despinchada",
		ServicePrice:    4000,
		AppointmentDate: "2024-06-10",
		AppointmentTime: "09:00",
		DeliveryDate:    "2024-06-10",
		DeliveryTime:    "19:00",
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink(IntentConfirm, sampleAppointment())

	require.True(t, strings.HasPrefix(link, "https://wa.me/573001234567?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)

	msg := u.Query().Get("text")
	assert.Contains(t, msg, "Carlos")
	assert.Contains(t, msg, "confirmada")
	assert.Contains(t, msg, "2024-06-10")
	assert.Contains(t, msg, "Despinchada")
	assert.Contains(t, msg, "Entrega estimada")
}

func TestWhatsAppLinkIntents(t *testing.T) {
	ap := sampleAppointment()

	info, err := url.Parse(WhatsAppLink(IntentInfo, ap))
	require.NoError(t, err)
	assert.Contains(t, info.Query().Get("text"), "te escribimos de Bicicolombia")

	res, err := url.Parse(WhatsAppLink(IntentReschedule, ap))
	require.NoError(t, err)
	assert.Contains(t, res.Query().Get("text"), "reprogramada")
}

func TestWhatsAppLinkEmptyPhone(t *testing.T) {
	ap := sampleAppointment()
	ap.ClientPhone = "sin teléfono"

	assert.Equal(t, "", WhatsAppLink(IntentInfo, ap))
}

func TestValidIntent(t *testing.T) {
	assert.True(t, ValidIntent(IntentInfo))
	assert.True(t, ValidIntent(IntentConfirm))
	assert.True(t, ValidIntent(IntentReschedule))
	assert.False(t, ValidIntent(Intent("spam")))
}
