package appointment

import (
	"time"

	"github.com/bicicolombia/taller-scheduler/internal/catalog"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
)

// ===============================
// Delivery Estimator
// ===============================

// Hora fija de entrega al cliente: 7 p.m.
const DeliveryHour = 19

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// EstimateDelivery calcula la entrega estimada para una cita que inicia
// en start con los servicios seleccionados:
//
//   - selección no vacía y 100% express → mismo día, 19:00
//   - cualquier otro caso (vacía, mixta, o con algún servicio normal)
//     → día siguiente, 19:00
//
// Función pura, misma zona horaria de entrada.
func EstimateDelivery(start time.Time, serviceIDs []string) time.Time {
	day := start
	if !catalog.AllExpress(serviceIDs) {
		day = day.AddDate(0, 0, 1)
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		DeliveryHour, 0, 0, 0,
		start.Location(),
	)
}

// ParseSlot interpreta los campos fecha + hora de una cita como un
// instante en la zona horaria del taller.
func ParseSlot(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(
		DateLayout+" "+ClockLayout,
		date+" "+clock,
		loc,
	)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return t, nil
}

// ===============================
// Delivery: calculada vs. manual
// ===============================

// Delivery distingue "recalcular con el estimador" de "el staff digitó
// la entrega a mano". La variante manual se persiste tal cual.
type Delivery struct {
	overridden bool
	date       string
	clock      string
}

func DeliveryComputed() Delivery {
	return Delivery{}
}

func DeliveryOverridden(date, clock string) Delivery {
	return Delivery{overridden: true, date: date, clock: clock}
}

func (d Delivery) Overridden() (date, clock string, ok bool) {
	return d.date, d.clock, d.overridden
}
