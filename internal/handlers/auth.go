package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/pixelforge/studio-console/internal/dto"
	apierrors "github.com/pixelforge/studio-console/internal/errors"
	"github.com/pixelforge/studio-console/internal/middleware"
	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/policy"
	"github.com/pixelforge/studio-console/internal/services"
)

// AuthHandler coordinates session-related HTTP handlers.
type AuthHandler struct {
	sessionService *services.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessionService *services.SessionService) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
	}
}

// Login establishes a session for the given email and role.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email string `json:"email" binding:"required"`
		Role  string `json:"role" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	h.login(c, req.Email, models.Role(req.Role))
}

// EmployeeLogin establishes an employee session from a badge number.
func (h *AuthHandler) EmployeeLogin(c *gin.Context) {
	type EmployeeLoginRequest struct {
		EmployeeID string `json:"employee_id" binding:"required"`
	}

	var req EmployeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	h.login(c, req.EmployeeID, models.RoleEmployee)
}

func (h *AuthHandler) login(c *gin.Context, email string, role models.Role) {
	identity, err := h.sessionService.Login(email, role)
	if err != nil {
		if errors.Is(err, services.ErrUnknownRole) {
			apierrors.BadRequest(c, "Unknown role")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	encoded, err := h.sessionService.Encode(identity)
	if err != nil {
		apierrors.InternalError(c, "Failed to encode session")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.IdentitySessionKey, encoded)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToIdentityDTO(identity))
}

// Logout clears the current identity and erases the persisted record.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me reports the restored identity and its reachable dashboard sections.
// Role none means no session; clients block role-gated rendering until this
// has answered.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	c.JSON(http.StatusOK, gin.H{
		"identity": dto.ToIdentityDTO(identity),
		"sections": policy.SectionsFor(identity.Role),
	})
}
