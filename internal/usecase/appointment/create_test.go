package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
	"github.com/bicicolombia/taller-scheduler/internal/notify"
)

func validInput(source Source) CreateAppointmentInput {
	return CreateAppointmentInput{
		Source:      source,
		ClientName:  "maría lópez",
		ClientPhone: "3001234567",
		BikeType:    "MTB",
		ServiceIDs:  []string{"l1", "m1"},
		Date:        "2024-06-10",
		Time:        "09:00",
		Notes:       "cadena suelta",
	}
}

func TestCreateClientAppointment(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	uc := NewCreateAppointment(repo, notifier, nil, bogota)

	ap, err := uc.Execute(context.Background(), validInput(SourceClient))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "l1,m1", ap.ServiceID)
	assert.Equal(t, "Despinchada + Mto. Sencillo Gama 1", ap.ServiceName)
	assert.Equal(t, 4000+75000, ap.ServicePrice)

	// selección mixta → entrega al día siguiente
	assert.Equal(t, "2024-06-11", ap.DeliveryDate)
	assert.Equal(t, "19:00", ap.DeliveryTime)

	// la auto-agenda entra pendiente: todavía no se notifica
	assert.Empty(t, notifier.sent)
}

func TestCreateWalkInNotifies(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	uc := NewCreateAppointment(repo, notifier, nil, bogota)

	staff := uint(3)
	in := validInput(SourceWalkIn)
	in.StaffID = &staff

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), ap.Status, "la cita física nace confirmada")

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notify.EventWalkIn, notifier.sent[0].Event)
	assert.Equal(t, "maría lópez", notifier.sent[0].ClientName)
}

func TestCreateWalkInRequiresServices(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), &fakeNotifier{}, nil, bogota)

	in := validInput(SourceWalkIn)
	in.ServiceIDs = nil

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_services"))
}

func TestCreateClientAllowsEmptySelection(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), &fakeNotifier{}, nil, bogota)

	in := validInput(SourceClient)
	in.ServiceIDs = nil

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "", ap.ServiceID)
	assert.Equal(t, 0, ap.ServicePrice)
	assert.Equal(t, "2024-06-11", ap.DeliveryDate, "sin servicios se asume un día")
}

func TestCreateValidations(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), &fakeNotifier{}, nil, bogota)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateAppointmentInput)
		code   string
	}{
		{"sin nombre", func(in *CreateAppointmentInput) { in.ClientName = "  " }, "missing_fields"},
		{"sin fecha", func(in *CreateAppointmentInput) { in.Date = "" }, "missing_fields"},
		{"teléfono corto", func(in *CreateAppointmentInput) { in.ClientPhone = "123" }, "invalid_phone"},
		{"bici inválida", func(in *CreateAppointmentInput) { in.BikeType = "Tándem" }, "invalid_bike_type"},
		{"servicio fantasma", func(in *CreateAppointmentInput) { in.ServiceIDs = []string{"zzz"} }, "unknown_service"},
		{"antes de abrir", func(in *CreateAppointmentInput) { in.Time = "08:00" }, "outside_working_hours"},
		{"después del cierre", func(in *CreateAppointmentInput) { in.Time = "19:30" }, "outside_working_hours"},
		{"fecha corrupta", func(in *CreateAppointmentInput) { in.Date = "10/06/2024" }, "invalid_date_or_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(SourceClient)
			tc.mutate(&in)

			_, err := uc.Execute(ctx, in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "esperaba %s, fue %v", tc.code, err)
		})
	}
}

func TestCreatePersistFailureDoesNotNotify(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreate = true
	notifier := &fakeNotifier{}
	uc := NewCreateAppointment(repo, notifier, nil, bogota)

	_, err := uc.Execute(context.Background(), validInput(SourceWalkIn))
	require.Error(t, err)
	assert.Empty(t, notifier.sent)
}
