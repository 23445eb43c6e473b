package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bicicolombia/taller-scheduler/internal/catalog"
	"github.com/bicicolombia/taller-scheduler/internal/config"
	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/dto"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
	"github.com/bicicolombia/taller-scheduler/internal/httpresp"
	"github.com/bicicolombia/taller-scheduler/internal/models"
	"github.com/bicicolombia/taller-scheduler/internal/notify"
	"github.com/bicicolombia/taller-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	createUC *appointment.CreateAppointment
	config   *config.Config
	loc      *time.Location
}

func NewPublicHandler(
	createUC *appointment.CreateAppointment,
	cfg *config.Config,
	loc *time.Location,
) *PublicHandler {
	return &PublicHandler{
		createUC: createUC,
		config:   cfg,
		loc:      loc,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type QuoteRequest struct {
	ServiceIDs []string `json:"service_ids"`
	Date       string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string   `json:"time" binding:"required"` // HH:mm
}

type PublicCreateAppointmentRequest struct {
	ClientName  string   `json:"client_name" binding:"required"`
	ClientPhone string   `json:"client_phone" binding:"required"`
	ClientEmail string   `json:"client_email"`
	BikeType    string   `json:"bike_type" binding:"required"`
	ServiceIDs  []string `json:"service_ids"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
	Notes       string   `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, catalog.Categories())
}

////////////////////////////////////////////////////////
// SHOP
////////////////////////////////////////////////////////

func (h *PublicHandler) GetShop(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"name":       h.config.ShopName,
		"address":    h.config.ShopAddress,
		"phone":      h.config.ShopPhone,
		"timezone":   h.config.ShopTimezone,
		"whatsapp":   "https://wa.me/" + h.config.ShopPhone,
		"open_from":  domain.OpenClock,
		"open_until": domain.CloseClock,
		"bike_types": models.BikeTypes,
	})
}

////////////////////////////////////////////////////////
// QUOTE
////////////////////////////////////////////////////////

// Quote cotiza una selección de servicios sin crear nada: precio total
// y entrega estimada para el turno elegido.
func (h *PublicHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !catalog.ValidIDs(req.ServiceIDs) {
		httperr.BadRequest(c, "unknown_service", "Servicio no encontrado en el catálogo.")
		return
	}

	start, err := domain.ParseSlot(req.Date, req.Time, h.loc)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	delivery := domain.EstimateDelivery(start, req.ServiceIDs)

	httpresp.OK(c, dto.QuoteDTO{
		TotalPrice:   catalog.TotalPrice(req.ServiceIDs),
		AllExpress:   catalog.AllExpress(req.ServiceIDs),
		DeliveryDate: delivery.Format(domain.DateLayout),
		DeliveryTime: delivery.Format(domain.ClockLayout),
	})
}

////////////////////////////////////////////////////////
// CREATE (auto-agenda del cliente)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		Source:      appointment.SourceClient,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		BikeType:    req.BikeType,
		ServiceIDs:  req.ServiceIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	// El enlace de calendario es cortesía: si falla, la cita ya quedó
	calendarLink, _ := notify.CalendarLink(ap, h.config.ShopAddress, h.loc)

	c.JSON(201, dto.BookingConfirmationDTO{
		Appointment:  ap,
		CalendarLink: calendarLink,
	})
}
