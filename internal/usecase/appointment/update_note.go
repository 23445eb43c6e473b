package appointment

import (
	"context"

	"github.com/bicicolombia/taller-scheduler/internal/audit"
	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

type UpdateAdminNote struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAdminNote(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAdminNote {
	return &UpdateAdminNote{
		repo:  repo,
		audit: audit,
	}
}

// Execute guarda la nota interna del staff. Nota vacía = borrar la nota.
// No toca el estado de la cita.
func (uc *UpdateAdminNote) Execute(
	ctx context.Context,
	staffID uint,
	appointmentID uint,
	note string,
) error {

	if _, err := uc.repo.GetAppointment(ctx, appointmentID); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.UpdateAdminNote(ctx, appointmentID, note); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "admin_note_updated",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
