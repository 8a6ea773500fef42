package api

import (
	"errors"
	"net/http"

	reqdto "card-tracker/internal/handler/dto/request"
	resdto "card-tracker/internal/handler/dto/response"
	"card-tracker/internal/pkg/jwt"
	"card-tracker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{authCommands: authCommands}
}

// @Summary Admin login
// @Description Exchange the admin security key for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.authCommands.Login(c.Request.Context(), req.SecurityKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSecurityKey):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid security key",
			})
		case errors.Is(err, commands.ErrKeyNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Admin access is not configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{Token: token})
}

// @Summary Current session
// @Description Confirm the bearer token is a valid admin session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MeResponse{Role: jwt.SubjectAdmin})
}
