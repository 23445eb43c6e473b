package appointment

import (
	"context"

	"github.com/bicicolombia/taller-scheduler/internal/models"
)

type Repository interface {
	// -------- Appointment (create / read) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Nota interna del staff: actualización directa de campo,
	// no es una transición de estado.
	UpdateAdminNote(
		ctx context.Context,
		id uint,
		note string,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	SearchAppointments(
		ctx context.Context,
		query string,
		page int,
		limit int,
	) ([]models.Appointment, int64, error)
}
