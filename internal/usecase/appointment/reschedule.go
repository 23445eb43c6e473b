package appointment

import (
	"context"
	"time"

	"github.com/bicicolombia/taller-scheduler/internal/audit"
	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
	"github.com/bicicolombia/taller-scheduler/internal/models"
	"github.com/bicicolombia/taller-scheduler/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleAppointmentInput struct {
	AppointmentID uint

	NewDate string
	NewTime string

	// Entrega digitada a mano; zero value = recalcular con el estimador.
	Delivery domain.Delivery
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
	loc      *time.Location
}

func NewRescheduleAppointment(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
	loc *time.Location,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		loc:      loc,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	staffID uint,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if in.NewDate == "" || in.NewTime == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Reschedule(ap, in.NewDate, in.NewTime, in.Delivery, uc.loc); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.PayloadFrom(notify.EventReschedule, ap))

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"new_date": in.NewDate,
			"new_time": in.NewTime,
		},
	})

	return ap, nil
}
