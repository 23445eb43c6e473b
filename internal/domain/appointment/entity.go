package appointment

import (
	"time"

	"github.com/bicicolombia/taller-scheduler/internal/catalog"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
	"github.com/bicicolombia/taller-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm pasa una cita pendiente a confirmada. Si la fila es antigua y
// no trae entrega estimada, la completa con el estimador antes de persistir.
func Confirm(ap *models.Appointment, loc *time.Location) error {
	next, err := Apply(Status(ap.Status), ActionConfirm)
	if err != nil {
		return err
	}

	if ap.DeliveryDate == "" || ap.DeliveryTime == "" {
		if err := fillDelivery(ap, loc); err != nil {
			return err
		}
	}

	ap.Status = string(next)
	return nil
}

// Cancel marca la cita como cancelada. No dispara notificación:
// el contacto con el cliente queda como acción manual del staff.
func Cancel(ap *models.Appointment) error {
	next, err := Apply(Status(ap.Status), ActionCancel)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

// Reschedule mueve la cita a un nuevo turno. La entrega se recalcula
// con los servicios ya agendados, salvo que venga digitada a mano.
// El estado siempre vuelve a pendiente.
func Reschedule(ap *models.Appointment, newDate, newClock string, delivery Delivery, loc *time.Location) error {
	next, err := Apply(Status(ap.Status), ActionReschedule)
	if err != nil {
		return err
	}

	if !WithinWindow(newClock) {
		return httperr.ErrBusiness("outside_working_hours")
	}

	if _, err := ParseSlot(newDate, newClock, loc); err != nil {
		return err
	}

	ap.AppointmentDate = newDate
	ap.AppointmentTime = newClock

	if date, clock, ok := delivery.Overridden(); ok {
		// se persiste tal cual, sin validar contra el estimador
		ap.DeliveryDate = date
		ap.DeliveryTime = clock
	} else if err := fillDelivery(ap, loc); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

func fillDelivery(ap *models.Appointment, loc *time.Location) error {
	start, err := ParseSlot(ap.AppointmentDate, ap.AppointmentTime, loc)
	if err != nil {
		return err
	}

	d := EstimateDelivery(start, catalog.SplitIDs(ap.ServiceID))
	ap.DeliveryDate = d.Format(DateLayout)
	ap.DeliveryTime = d.Format(ClockLayout)
	return nil
}
