package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/httpresp"
	"github.com/BellezaEstetica/salon-scheduler/internal/middleware"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
	ucAppointment "github.com/BellezaEstetica/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC     *ucAppointment.CreateAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	cancelUC     *ucAppointment.CancelAppointment
	completeUC   *ucAppointment.CompleteAppointment
	chargedUC    *ucAppointment.SetChargedAmount
	freeSlotsUC  *ucAppointment.FreeSlots
	listUC       *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	chargedUC *ucAppointment.SetChargedAmount,
	freeSlotsUC *ucAppointment.FreeSlots,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		completeUC:   completeUC,
		chargedUC:    chargedUC,
		freeSlotsUC:  freeSlotsUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"name" binding:"required"`
	ClientEmail string `json:"email" binding:"required,email"`
	ClientPhone string `json:"phone" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

type RescheduleRequest struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

type ChargedAmountRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeOperationError(c *gin.Context, err error) {
	switch {
	case httperr.IsSlotConflict(err):
		httperr.Conflict(c, httperr.CodeSlotConflict, "Este horário já está ocupado.")
	case httperr.IsNotFound(err):
		httperr.NotFound(c, httperr.CodeNotFound, "Agendamento não encontrado.")
	case httperr.IsInvalidState(err):
		httperr.BadRequest(c, httperr.CodeInvalidState, "Operação inválida para o estado atual.")
	case httperr.IsValidation(err):
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
	case httperr.IsBlocked(err):
		httperr.Forbidden(c, httperr.CodeBlocked, "Cliente bloqueado não pode agendar.")
	default:
		httperr.Internal(c, "storage_failure", "Erro ao processar agendamento.")
	}
}

// ======================================================
// FREE SLOTS
// ======================================================

func (h *AppointmentHandler) FreeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data é obrigatória.")
		return
	}

	var excludeID uint
	if raw := c.Query("exclude_appointment"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_exclude_appointment", "Agendamento inválido.")
			return
		}
		excludeID = uint(id)
	}

	slots, err := h.freeSlotsUC.Execute(c.Request.Context(), date, excludeID)
	if err != nil {
		writeOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"free_slots": slots})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos obrigatórios devem ser preenchidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeOperationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	f := domain.Filter{
		Date:        c.Query("date"),
		ClientEmail: c.Query("client_email"),
		ClientName:  c.Query("client_name"),
	}

	// Regular clients only ever see their own bookings.
	if !isAdminFromContext(c) {
		f.ClientID = c.MustGet(middleware.ContextClientID).(uint)
		f.ClientEmail = ""
		f.ClientName = ""
	}

	aps, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		writeOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, aps)
}

// ======================================================
// LIFECYCLE TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// A client may only cancel their own booking; answering 404 for
	// someone else's avoids confirming the id exists.
	if !isAdminFromContext(c) {
		clientID := c.MustGet(middleware.ContextClientID).(uint)

		var owned models.Appointment
		if err := h.db.
			Where("id = ? AND client_id = ?", id, clientID).
			First(&owned).Error; err != nil {
			httperr.NotFound(c, httperr.CodeNotFound, "Agendamento não encontrado.")
			return
		}
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Data e horário são obrigatórios.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		writeOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) SetChargedAmount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ChargedAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Valor é obrigatório.")
		return
	}

	actorID := actorFromContext(c)

	ap, err := h.chargedUC.Execute(c.Request.Context(), id, actorID, *req.Amount)
	if err != nil {
		writeOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// SetNotes stores the practitioner's free-text annotation on a past or
// upcoming appointment.
func (h *AppointmentHandler) SetNotes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	ap.Notes = req.Notes
	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_save_notes", "Erro ao salvar anotação.")
		return
	}

	httpresp.Message(c, "Anotação salva com sucesso.")
}

// ======================================================
// helpers
// ======================================================

func isAdminFromContext(c *gin.Context) bool {
	isAdmin, ok := c.Get(middleware.ContextIsAdmin)
	return ok && isAdmin == true
}

func actorFromContext(c *gin.Context) *uint {
	if raw, ok := c.Get(middleware.ContextClientID); ok {
		if id, ok := raw.(uint); ok {
			return &id
		}
	}
	return nil
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
