package handler

import (
	"github.com/gin-gonic/gin"

	"lexconnect/internal/service"
)

// DashboardHandler handles the landing page summary endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary handles GET /api/v1/dashboard
// @Summary Dashboard summary
// @Description Case counters, pending documents, unread messages and the next scheduled appointments, scoped to the caller
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=service.DashboardSummary} "Summary"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), ident)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}
