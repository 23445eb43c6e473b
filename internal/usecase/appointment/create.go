package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/bicicolombia/taller-scheduler/internal/audit"
	"github.com/bicicolombia/taller-scheduler/internal/catalog"
	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
	"github.com/bicicolombia/taller-scheduler/internal/models"
	"github.com/bicicolombia/taller-scheduler/internal/notify"
	"github.com/bicicolombia/taller-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// Source distingue la auto-agenda del widget público de la cita
// física que registra el staff en el panel.
type Source string

const (
	SourceClient Source = "client"
	SourceWalkIn Source = "walkin"
)

type CreateAppointmentInput struct {
	Source Source

	ClientName  string
	ClientPhone string
	ClientEmail string

	BikeType   string
	ServiceIDs []string

	Date  string
	Time  string
	Notes string

	// Staff que registra la cita física; nil para auto-agenda.
	StaffID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
	loc      *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		loc:      loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obligatorios
	// --------------------------------------------------
	if strings.TrimSpace(in.ClientName) == "" ||
		strings.TrimSpace(in.ClientPhone) == "" ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if !validators.IsPhoneValid(in.ClientPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	if !models.ValidBikeType(in.BikeType) {
		return nil, httperr.ErrBusiness("invalid_bike_type")
	}

	// La cita física exige al menos un servicio. La auto-agenda no
	// bloquea la selección vacía en esta capa: eso lo evita el widget.
	if in.Source == SourceWalkIn && len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_services")
	}

	if !catalog.ValidIDs(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("unknown_service")
	}

	// --------------------------------------------------
	// 2. Turno dentro del horario del taller
	// --------------------------------------------------
	if !domain.WithinWindow(in.Time) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	start, err := domain.ParseSlot(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Foto de servicios + entrega estimada
	// --------------------------------------------------
	delivery := domain.EstimateDelivery(start, in.ServiceIDs)

	ap := &models.Appointment{
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		ClientEmail: strings.TrimSpace(in.ClientEmail),

		BikeType: in.BikeType,

		ServiceID:    catalog.JoinIDs(in.ServiceIDs),
		ServiceName:  catalog.Names(in.ServiceIDs),
		ServicePrice: catalog.TotalPrice(in.ServiceIDs),

		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		DeliveryDate:    delivery.Format(domain.DateLayout),
		DeliveryTime:    delivery.Format(domain.ClockLayout),

		Notes:  in.Notes,
		Status: string(domain.InitialStatus(in.Source == SourceWalkIn)),
	}

	// --------------------------------------------------
	// 4. Persistencia (si falla, no queda estado local)
	// --------------------------------------------------
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Notificación: solo al entrar a confirmada
	// --------------------------------------------------
	if ap.Status == string(domain.StatusConfirmed) {
		uc.notifier.Dispatch(notify.PayloadFrom(notify.EventWalkIn, ap))
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"source": in.Source, "status": ap.Status},
	})

	return ap, nil
}
