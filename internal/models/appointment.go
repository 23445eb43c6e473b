package models

import "time"

// Tipos de bicicleta aceptados por el taller.
var BikeTypes = []string{"MTB", "Ruta", "Urbana", "Eléctrica", "Infantil"}

func ValidBikeType(bt string) bool {
	for _, t := range BikeTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// Appointment es la cita central del sistema. Los campos service_name y
// service_price son una foto al momento de agendar: nunca se recalculan
// desde el catálogo vivo, aunque los precios cambien después.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	BikeType string `gorm:"size:20" json:"bike_type"`

	// IDs seleccionados, separados por coma, en orden de selección.
	ServiceID    string `gorm:"size:255" json:"service_id"`
	ServiceName  string `gorm:"size:500" json:"service_name"`
	ServicePrice int    `json:"service_price"`

	// Fecha y hora locales del taller, sin zona horaria.
	AppointmentDate string `gorm:"size:10;not null" json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`  // HH:MM

	// Entrega estimada. Puede faltar en filas antiguas; en ese caso
	// se deriva al leer, sin escribirla de vuelta.
	DeliveryDate string `gorm:"size:10" json:"delivery_date"`
	DeliveryTime string `gorm:"size:5" json:"delivery_time"`

	Notes     string `gorm:"size:500" json:"notes"`
	AdminNote string `gorm:"size:500" json:"admin_note"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
