package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexconnect/internal/service"
)

// ConversationHandler handles messaging endpoints.
type ConversationHandler struct {
	conversationService service.ConversationService
}

// NewConversationHandler creates a new ConversationHandler.
func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// List handles GET /api/v1/conversations
// @Summary List conversations
// @Description List message threads visible to the caller, newest activity first
// @Tags conversations
// @Produce json
// @Param q query string false "Search over party names and last preview"
// @Success 200 {object} Response{data=[]domain.Conversation} "Scoped threads"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /conversations [get]
func (h *ConversationHandler) List(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	convs, err := h.conversationService.List(c.Request.Context(), ident, c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, convs)
}

// GetByID handles GET /api/v1/conversations/:id
// @Summary Get a conversation
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} Response{data=domain.Conversation} "Conversation"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Security BearerAuth
// @Router /conversations/{id} [get]
func (h *ConversationHandler) GetByID(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	conv, err := h.conversationService.GetByID(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, conv)
}

// ListMessages handles GET /api/v1/conversations/:id/messages
// @Summary List messages
// @Description List a thread's messages in chronological order
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} Response{data=[]domain.Message} "Messages"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Security BearerAuth
// @Router /conversations/{id}/messages [get]
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	msgs, err := h.conversationService.ListMessages(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, msgs)
}

// SendMessage handles POST /api/v1/conversations/:id/messages
// @Summary Send a message
// @Description Append a message to a thread and refresh its preview and unread count
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body service.SendMessageInput true "Message content"
// @Success 201 {object} Response{data=domain.Message} "Stored message"
// @Failure 400 {object} ErrorResponseBody "Empty content"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Security BearerAuth
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var input service.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	msg, err := h.conversationService.SendMessage(c.Request.Context(), ident, c.Param("id"), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, msg)
}

// MarkRead handles POST /api/v1/conversations/:id/read
// @Summary Mark a conversation read
// @Description Reset the thread's unread counter
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} Response{data=domain.Conversation} "Updated conversation"
// @Failure 404 {object} ErrorResponseBody "Not found or not visible"
// @Security BearerAuth
// @Router /conversations/{id}/read [post]
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	conv, err := h.conversationService.MarkRead(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, conv)
}
