package handlers

import (
	"net/http"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin1"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

type AdminLoginResponse struct {
	Status string `json:"status" example:"ok"`
	Token  string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// AdminLogin godoc
// @Summary      Login as admin
// @Description  Authenticate an admin and return the X-ADMIN-TOKEN value
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body AdminLoginRequest true "Credentials"
// @Success      200 {object} AdminLoginResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing credentials"})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AdminLoginResponse{Status: "ok", Token: token})
}
