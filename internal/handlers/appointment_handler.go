package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/bicicolombia/taller-scheduler/internal/domain/appointment"
	"github.com/bicicolombia/taller-scheduler/internal/httperr"
	"github.com/bicicolombia/taller-scheduler/internal/httpresp"
	"github.com/bicicolombia/taller-scheduler/internal/middleware"
	"github.com/bicicolombia/taller-scheduler/internal/notify"
	"github.com/bicicolombia/taller-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *appointment.CreateAppointment
	confirmUC    *appointment.ConfirmAppointment
	cancelUC     *appointment.CancelAppointment
	rescheduleUC *appointment.RescheduleAppointment
	listUC       *appointment.ListAppointments
	calendarUC   *appointment.ListCalendarEvents
	noteUC       *appointment.UpdateAdminNote

	loc *time.Location
}

func NewAppointmentHandler(
	createUC *appointment.CreateAppointment,
	confirmUC *appointment.ConfirmAppointment,
	cancelUC *appointment.CancelAppointment,
	rescheduleUC *appointment.RescheduleAppointment,
	listUC *appointment.ListAppointments,
	calendarUC *appointment.ListCalendarEvents,
	noteUC *appointment.UpdateAdminNote,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		confirmUC:    confirmUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
		listUC:       listUC,
		calendarUC:   calendarUC,
		noteUC:       noteUC,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WalkInAppointmentRequest struct {
	ClientName  string   `json:"client_name" binding:"required"`
	ClientPhone string   `json:"client_phone" binding:"required"`
	ClientEmail string   `json:"client_email"`
	BikeType    string   `json:"bike_type" binding:"required"`
	ServiceIDs  []string `json:"service_ids" binding:"required"`
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string   `json:"time" binding:"required"` // HH:mm
	Notes       string   `json:"notes"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	// Entrega manual; ambos vacíos = recalcular con el estimador.
	DeliveryDate string `json:"delivery_date"`
	DeliveryTime string `json:"delivery_time"`
}

type AdminNoteRequest struct {
	Note string `json:"note"`
}

// ======================================================
// HELPERS
// ======================================================

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func staffID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// ======================================================
// CREATE (cita física desde el panel)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req WalkInAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	staff := staffID(c)

	ap, err := h.createUC.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		Source:      appointment.SourceWalkIn,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		BikeType:    req.BikeType,
		ServiceIDs:  req.ServiceIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		StaffID:     &staff,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST + BÚSQUEDA
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	query := c.Query("query")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.listUC.Execute(c.Request.Context(), query, page, limit)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Page(c, page, limit, total, items)
}

// ======================================================
// CALENDARIO
// ======================================================

func (h *AppointmentHandler) Calendar(c *gin.Context) {
	events, err := h.calendarUC.Execute(
		c.Request.Context(),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, events)
}

// ======================================================
// TRANSICIONES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), staffID(c), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), staffID(c), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	delivery := domain.DeliveryComputed()
	if req.DeliveryDate != "" && req.DeliveryTime != "" {
		delivery = domain.DeliveryOverridden(req.DeliveryDate, req.DeliveryTime)
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), staffID(c), appointment.RescheduleAppointmentInput{
		AppointmentID: id,
		NewDate:       req.Date,
		NewTime:       req.Time,
		Delivery:      delivery,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// NOTA INTERNA
// ======================================================

func (h *AppointmentHandler) UpdateNote(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req AdminNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := h.noteUC.Execute(c.Request.Context(), staffID(c), id, req.Note); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "updated"})
}

// ======================================================
// WHATSAPP
// ======================================================

// WhatsAppLink devuelve el enlace wa.me con el mensaje prellenado según
// la intención (?intent=info|confirm|reschedule). Nunca envía nada.
func (h *AppointmentHandler) WhatsAppLink(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	intent := notify.Intent(c.DefaultQuery("intent", string(notify.IntentInfo)))
	if !notify.ValidIntent(intent) {
		httperr.BadRequest(c, "invalid_intent", "Intención de mensaje inválida.")
		return
	}

	ap, err := h.listUC.Get(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	link := notify.WhatsAppLink(intent, ap)
	if link == "" {
		httperr.BadRequest(c, "invalid_phone", "La cita no tiene un teléfono válido.")
		return
	}

	httpresp.OK(c, gin.H{"link": link})
}
