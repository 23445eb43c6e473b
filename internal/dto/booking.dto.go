package dto

import "github.com/bicicolombia/taller-scheduler/internal/models"

type BookingConfirmationDTO struct {
	Appointment  *models.Appointment `json:"appointment"`
	CalendarLink string              `json:"calendar_link,omitempty"`
}
