package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexconnect/internal/service"
)

// AppointmentHandler handles consultation scheduling endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List handles GET /api/v1/appointments
// @Summary List appointments
// @Description List appointments visible to the caller, split into upcoming and past tabs
// @Tags appointments
// @Produce json
// @Param tab query string false "Tab projection (upcoming, past)" default(upcoming)
// @Param kind query string false "Kind filter (in_person, video_conference, written_consultation, all)"
// @Param q query string false "Search over title"
// @Success 200 {object} Response{data=[]domain.Appointment,meta=service.AppointmentTabCounts} "Scoped appointments with tab badges"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var filter service.AppointmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.appointmentService.List(c.Request.Context(), ident, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWithMeta(c, result.Appointments, result.Counts)
}

// OnDate handles GET /api/v1/appointments/calendar
// @Summary Appointments on a date
// @Description List the caller's scheduled appointments for one calendar day
// @Tags appointments
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} Response{data=[]domain.Appointment} "Scheduled appointments on the date"
// @Failure 400 {object} ErrorResponseBody "Invalid date"
// @Security BearerAuth
// @Router /appointments/calendar [get]
func (h *AppointmentHandler) OnDate(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	apps, err := h.appointmentService.OnDate(c.Request.Context(), ident, c.Query("date"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, apps)
}

// GetByID handles GET /api/v1/appointments/:id
// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} Response{data=domain.Appointment} "Appointment"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Security BearerAuth
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	a, err := h.appointmentService.GetByID(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, a)
}

// Upsert handles POST /api/v1/appointments
// @Summary Schedule or reschedule an appointment
// @Description Insert a new appointment, or replace the one matching the given ID
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body service.UpsertAppointmentInput true "Appointment details"
// @Success 201 {object} Response{data=domain.Appointment} "Stored appointment"
// @Failure 400 {object} ErrorResponseBody "Validation error or unknown participant"
// @Security BearerAuth
// @Router /appointments [post]
func (h *AppointmentHandler) Upsert(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var input service.UpsertAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	a, err := h.appointmentService.Upsert(c.Request.Context(), ident, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, a)
}

// Cancel handles POST /api/v1/appointments/:id/cancel
// @Summary Cancel an appointment
// @Description Move a scheduled appointment to cancelled; completed or cancelled ones are rejected
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} Response{data=domain.Appointment} "Cancelled appointment"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Failure 409 {object} ErrorResponseBody "Appointment is not scheduled"
// @Security BearerAuth
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	a, err := h.appointmentService.Cancel(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, a)
}

// Complete handles POST /api/v1/appointments/:id/complete
// @Summary Complete an appointment
// @Description Move a scheduled appointment to completed
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} Response{data=domain.Appointment} "Completed appointment"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Failure 409 {object} ErrorResponseBody "Appointment is not scheduled"
// @Security BearerAuth
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	a, err := h.appointmentService.Complete(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, a)
}
