package handlers

import (
	"errors"
	"net/http"

	"github.com/hagd0520/my-memo/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorJSON(kindValidation, err.Error()))
		return
	}

	user, err := h.accountService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, errorJSON(kindDuplicate, "A user with that username already exists"))
			return
		}
		// Log the cause, answer with a generic message
		h.logger.Error("Signup failed", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Signup failed. Please check your input and try again."))
		return
	}

	h.auditService.LogAction(&user.ID, "SIGNUP", user.Username, nil, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, gin.H{"message": "Signup successful", "user_id": user.ID})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorJSON(kindValidation, err.Error()))
		return
	}

	user, err := h.accountService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.auditService.LogAction(nil, "LOGIN_FAILED", req.Username, nil, c.ClientIP(), c.Request.UserAgent())
			c.JSON(http.StatusUnauthorized, errorJSON(kindAuthentication, "Login failed"))
			return
		}
		h.logger.Error("Login failed", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Database error"))
		return
	}

	// Set Session
	session := sessions.Default(c)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Failed to save session"))
		return
	}

	h.auditService.LogAction(&user.ID, "LOGIN", user.Username, nil, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// Logout clears the session unconditionally. Logging out twice is fine.
func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	username, _ := session.Get("username").(string)

	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Failed to clear session"))
		return
	}

	if username != "" {
		h.auditService.LogAction(nil, "LOGOUT", username, nil, c.ClientIP(), c.Request.UserAgent())
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
