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

type ConfirmAppointment struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
	loc      *time.Location
}

func NewConfirmAppointment(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
	loc *time.Location,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		loc:      loc,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	staffID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Confirm(ap, uc.loc); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.PayloadFrom(notify.EventConfirm, ap))

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
