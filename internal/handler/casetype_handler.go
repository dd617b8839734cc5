package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexconnect/internal/service"
)

// CaseTypeHandler handles the admin case taxonomy endpoints.
type CaseTypeHandler struct {
	caseTypeService service.CaseTypeService
}

// NewCaseTypeHandler creates a new CaseTypeHandler.
func NewCaseTypeHandler(caseTypeService service.CaseTypeService) *CaseTypeHandler {
	return &CaseTypeHandler{caseTypeService: caseTypeService}
}

// BaseTypes handles GET /api/v1/admin/casetypes
// @Summary List base types
// @Description List the two fixed case base types (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} Response{data=[]service.BaseTypeInfo} "Base types"
// @Security BearerAuth
// @Router /admin/casetypes [get]
func (h *CaseTypeHandler) BaseTypes(c *gin.Context) {
	RespondOK(c, h.caseTypeService.BaseTypes())
}

// ListSubtypes handles GET /api/v1/admin/casetypes/subtypes
// @Summary List subtypes
// @Description List admin-defined subtypes, optionally narrowed to one base type
// @Tags admin
// @Produce json
// @Param base_type query string false "Base type (administrative, judicial)"
// @Success 200 {object} Response{data=[]domain.CaseSubtype} "Subtypes"
// @Failure 400 {object} ErrorResponseBody "Unknown base type"
// @Security BearerAuth
// @Router /admin/casetypes/subtypes [get]
func (h *CaseTypeHandler) ListSubtypes(c *gin.Context) {
	subtypes, err := h.caseTypeService.ListSubtypes(c.Request.Context(), c.Query("base_type"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, subtypes)
}

// CreateSubtype handles POST /api/v1/admin/casetypes/subtypes
// @Summary Create a subtype
// @Description Define a new subtype; its ID is the next in the base type's sequence (JU-001, JU-002, ...)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.CreateSubtypeInput true "Subtype details"
// @Success 201 {object} Response{data=domain.CaseSubtype} "Created subtype"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /admin/casetypes/subtypes [post]
func (h *CaseTypeHandler) CreateSubtype(c *gin.Context) {
	var input service.CreateSubtypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	subtype, err := h.caseTypeService.CreateSubtype(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, subtype)
}
