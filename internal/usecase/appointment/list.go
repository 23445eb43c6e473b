package appointment

import (
	"context"
	"time"

	"github.com/bicicolombia/taller-scheduler/internal/catalog"
	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
	"github.com/bicicolombia/taller-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

// Execute lista las citas más recientes primero. Con query busca por
// nombre o teléfono; page/limit paginan el resultado.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	query string,
	page int,
	limit int,
) ([]models.Appointment, int64, error) {

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := uc.repo.SearchAppointments(ctx, query, page, limit)
	if err != nil {
		return nil, 0, err
	}

	for i := range items {
		uc.backfillDelivery(&items[i])
	}

	return items, total, nil
}

// Get carga una sola cita, con la misma entrega derivada de la lista.
func (uc *ListAppointments) Get(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	uc.backfillDelivery(ap)
	return ap, nil
}

// backfillDelivery completa la entrega estimada en filas antiguas que no
// la traen persistida. Solo afecta la respuesta: nunca se escribe de
// vuelta a la base.
func (uc *ListAppointments) backfillDelivery(ap *models.Appointment) {
	if ap.DeliveryDate != "" && ap.DeliveryTime != "" {
		return
	}

	start, err := domain.ParseSlot(ap.AppointmentDate, ap.AppointmentTime, uc.loc)
	if err != nil {
		return
	}

	d := domain.EstimateDelivery(start, catalog.SplitIDs(ap.ServiceID))
	ap.DeliveryDate = d.Format(domain.DateLayout)
	ap.DeliveryTime = d.Format(domain.ClockLayout)
}
