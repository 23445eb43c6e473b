package notify

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bogota = time.FixedZone("America/Bogota", -5*3600)

func TestCalendarLink(t *testing.T) {
	ap := sampleAppointment()

	link, err := CalendarLink(ap, "CALLE 5 # 34-12, CALI, COLOMBIA", bogota)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, "https://www.google.com/calendar/render?"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Cita Taller: Despinchada", q.Get("text"))
	assert.Equal(t, "CALLE 5 # 34-12, CALI, COLOMBIA", q.Get("location"))

	// 09:00 Bogotá = 14:00 UTC, evento de una hora
	assert.Equal(t, "20240610T140000Z/20240610T150000Z", q.Get("dates"))

	details := q.Get("details")
	assert.Contains(t, details, "Cliente: carlos gómez")
	assert.Contains(t, details, "Bici: MTB")
}

func TestCalendarLinkInvalidSlot(t *testing.T) {
	ap := sampleAppointment()
	ap.AppointmentTime = "mediodía"

	_, err := CalendarLink(ap, "CALI", bogota)
	assert.Error(t, err)
}
