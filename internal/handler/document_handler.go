package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexconnect/internal/service"
)

// DocumentHandler handles document listing and signing endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// List handles GET /api/v1/documents
// @Summary List documents
// @Description List documents of the caller's visible cases, narrowed by status tab, case and search
// @Tags documents
// @Produce json
// @Param status query string false "Status tab (awaiting_signature, signed, requires_review, completed, all)"
// @Param case_id query string false "Case filter"
// @Param q query string false "Search over document name"
// @Success 200 {object} Response{data=[]domain.Document,meta=service.DocumentTabCounts} "Scoped documents with tab badges"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var filter service.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.documentService.List(c.Request.Context(), ident, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWithMeta(c, result.Documents, result.Counts)
}

// GetByID handles GET /api/v1/documents/:id
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} Response{data=domain.Document} "Document"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	d, err := h.documentService.GetByID(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, d)
}

// Sign handles POST /api/v1/documents/:id/sign
// @Summary Sign a document
// @Description Mark a pending document as signed; requires explicit consent
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body service.SignDocumentInput true "Consent flag"
// @Success 200 {object} Response{data=domain.Document} "Signed document"
// @Failure 400 {object} ErrorResponseBody "Consent missing"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Failure 409 {object} ErrorResponseBody "Document is not awaiting signature"
// @Security BearerAuth
// @Router /documents/{id}/sign [post]
func (h *DocumentHandler) Sign(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var input service.SignDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	d, err := h.documentService.Sign(c.Request.Context(), ident, c.Param("id"), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, d)
}
