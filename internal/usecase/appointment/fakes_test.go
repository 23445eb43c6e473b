package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bicicolombia/taller-scheduler/internal/models"
	"github.com/bicicolombia/taller-scheduler/internal/notify"
)

var bogota = time.FixedZone("America/Bogota", -5*3600)

// fakeRepo guarda citas en memoria, en orden de inserción.
type fakeRepo struct {
	items  map[uint]*models.Appointment
	nextID uint

	failCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uint]*models.Appointment{}, nextID: 1}
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.failCreate {
		return errors.New("db down")
	}

	ap.ID = f.nextID
	f.nextID++
	ap.CreatedAt = time.Now()

	cp := *ap
	f.items[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.items[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.items[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateAdminNote(_ context.Context, id uint, note string) error {
	ap, ok := f.items[id]
	if !ok {
		return errors.New("record not found")
	}
	ap.AdminNote = note
	return nil
}

func (f *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.items))
	for id := uint(1); id < f.nextID; id++ {
		if ap, ok := f.items[id]; ok {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) SearchAppointments(_ context.Context, query string, page, limit int) ([]models.Appointment, int64, error) {
	all, _ := f.ListAppointments(context.Background())

	matched := make([]models.Appointment, 0)
	for _, ap := range all {
		if query == "" ||
			strings.Contains(strings.ToLower(ap.ClientName), strings.ToLower(query)) ||
			strings.Contains(ap.ClientPhone, query) {
			matched = append(matched, ap)
		}
	}

	total := int64(len(matched))

	start := (page - 1) * limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

// fakeNotifier captura los payloads que saldrían al webhook.
type fakeNotifier struct {
	sent []notify.Payload
}

func (f *fakeNotifier) Dispatch(p notify.Payload) {
	f.sent = append(f.sent, p)
}
