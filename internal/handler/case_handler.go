package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexconnect/internal/service"
)

// CaseHandler handles case listing endpoints.
type CaseHandler struct {
	caseService service.CaseService
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(caseService service.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// CaseListMeta is the derived filter state echoed alongside a listing.
type CaseListMeta struct {
	EffectiveSubtype string   `json:"effective_subtype"`
	SubtypeChoices   []string `json:"subtype_choices"`
}

// List handles GET /api/v1/cases
// @Summary List cases
// @Description List cases visible to the caller, narrowed by state, base type, subtype and search
// @Tags cases
// @Produce json
// @Param state query string false "Case state filter (open, closed, all)"
// @Param base_type query string false "Base type filter (administrative, judicial, all)"
// @Param subtype query string false "Subtype name filter; resets to all when stale for the base type"
// @Param q query string false "Search over case number, client and description"
// @Success 200 {object} Response{data=[]domain.Case,meta=CaseListMeta} "Scoped, filtered cases"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /cases [get]
func (h *CaseHandler) List(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var filter service.CaseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.caseService.List(c.Request.Context(), ident, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWithMeta(c, result.Cases, CaseListMeta{
		EffectiveSubtype: result.EffectiveSubtype,
		SubtypeChoices:   result.SubtypeChoices,
	})
}

// GetByID handles GET /api/v1/cases/:id
// @Summary Get a case
// @Description Fetch one case; records outside the caller's scope read as not found
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} Response{data=domain.Case} "Case"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Security BearerAuth
// @Router /cases/{id} [get]
func (h *CaseHandler) GetByID(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	result, err := h.caseService.GetByID(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Create handles POST /api/v1/admin/cases
// @Summary Create a case
// @Description Register a new case; the subtype must be registered under the base type
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.UpsertCaseInput true "Case details"
// @Success 201 {object} Response{data=domain.Case} "Stored case"
// @Failure 400 {object} ErrorResponseBody "Validation error or unknown subtype"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /admin/cases [post]
func (h *CaseHandler) Create(c *gin.Context) {
	var input service.UpsertCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.caseService.Upsert(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// Update handles PUT /api/v1/admin/cases/:id
// @Summary Update a case
// @Description Replace the case matching the path ID
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param request body service.UpsertCaseInput true "Case details"
// @Success 200 {object} Response{data=domain.Case} "Stored case"
// @Failure 400 {object} ErrorResponseBody "Validation error or unknown subtype"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /admin/cases/{id} [put]
func (h *CaseHandler) Update(c *gin.Context) {
	var input service.UpsertCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.ID = c.Param("id")

	result, err := h.caseService.Upsert(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
