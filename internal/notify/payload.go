package notify

import (
	"time"

	"github.com/bicicolombia/taller-scheduler/internal/models"
)

// ===============================
// Webhook payload
// ===============================

// Event identifica qué transición originó la notificación.
const (
	EventWalkIn     = "walkin"
	EventConfirm    = "confirm"
	EventReschedule = "reschedule"
)

type Payload struct {
	Event string `json:"event"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	BikeType    string `json:"bike_type"`

	ServiceName  string `json:"service_name"`
	ServicePrice int    `json:"service_price"`

	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	DeliveryDate    string `json:"delivery_date"`
	DeliveryTime    string `json:"delivery_time"`

	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"` // ISO-8601
}

// PayloadFrom arma la foto saliente de una cita. La fecha de creación
// viaja en ISO-8601 UTC, como la espera el flujo de n8n.
func PayloadFrom(event string, ap *models.Appointment) Payload {
	createdAt := ap.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return Payload{
		Event:           event,
		ClientName:      ap.ClientName,
		ClientPhone:     ap.ClientPhone,
		BikeType:        ap.BikeType,
		ServiceName:     ap.ServiceName,
		ServicePrice:    ap.ServicePrice,
		AppointmentDate: ap.AppointmentDate,
		AppointmentTime: ap.AppointmentTime,
		DeliveryDate:    ap.DeliveryDate,
		DeliveryTime:    ap.DeliveryTime,
		Notes:           ap.Notes,
		CreatedAt:       createdAt.UTC().Format(time.RFC3339),
	}
}
