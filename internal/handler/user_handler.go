package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexconnect/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /api/v1/admin/users
// @Summary Create a user
// @Description Create a new portal account (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.CreateUserInput true "User details"
// @Success 201 {object} Response{data=domain.User} "User created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 409 {object} ErrorResponseBody "Email already exists"
// @Security BearerAuth
// @Router /admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, user)
}

// List handles GET /api/v1/admin/users
// @Summary List users
// @Description List all portal accounts, active and deactivated (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} Response{data=[]domain.User} "List of users"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, users)
}

// GetByID handles GET /api/v1/admin/users/:id
// @Summary Get a user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response{data=domain.User} "User"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// Update handles PUT /api/v1/admin/users/:id
// @Summary Update a user
// @Description Update name, email or role (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body service.UpdateUserInput true "Fields to update"
// @Success 200 {object} Response{data=domain.User} "Updated user"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Failure 409 {object} ErrorResponseBody "Email already exists"
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// ToggleActive handles POST /api/v1/admin/users/:id/toggle-active
// @Summary Toggle user activation
// @Description Flip the account's active flag; there is no hard delete
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response{data=domain.User} "Updated user"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/users/{id}/toggle-active [post]
func (h *UserHandler) ToggleActive(c *gin.Context) {
	user, err := h.userService.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}
