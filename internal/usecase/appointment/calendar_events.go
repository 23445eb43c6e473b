package appointment

import (
	"context"
	"log"
	"time"

	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

type ListCalendarEvents struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListCalendarEvents(
	repo domain.Repository,
	loc *time.Location,
) *ListCalendarEvents {
	return &ListCalendarEvents{
		repo: repo,
		loc:  loc,
	}
}

// Execute deriva los eventos de agenda (entrada + entrega) de las citas
// confirmadas dentro del rango [from, to]. Las citas pendientes o
// canceladas no aparecen en el calendario.
func (uc *ListCalendarEvents) Execute(
	ctx context.Context,
	from string,
	to string,
) ([]domain.CalendarEvent, error) {

	rangeFrom, rangeTo, err := uc.parseRange(from, to)
	if err != nil {
		return nil, err
	}

	items, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0)

	for i := range items {
		ap := &items[i]

		if domain.Status(ap.Status) != domain.StatusConfirmed {
			continue
		}

		evs, err := domain.EventsFor(ap, uc.loc)
		if err != nil {
			// fila con fecha corrupta: se omite del calendario, no se
			// tumba la vista completa
			log.Println("calendar: skipping appointment", ap.ID, "-", err)
			continue
		}

		for _, ev := range evs {
			if ev.Start.Before(rangeFrom) || ev.Start.After(rangeTo) {
				continue
			}
			events = append(events, ev)
		}
	}

	return events, nil
}

func (uc *ListCalendarEvents) parseRange(from, to string) (time.Time, time.Time, error) {
	if from == "" || to == "" {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("missing_fields")
	}

	start, err := time.ParseInLocation(domain.DateLayout, from, uc.loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	end, err := time.ParseInLocation(domain.DateLayout, to, uc.loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	// to es inclusivo: cubre hasta el final de ese día
	end = end.AddDate(0, 0, 1).Add(-time.Second)

	if end.Before(start) {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_range")
	}

	return start, end, nil
}
