package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerAuthRoutes sets up the routes for authentication.
// The limiter only guards login.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, limit gin.HandlerFunc) {
	h := &authHandler{authService: authService}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", limit, h.login)
	}
}

// login godoc
// @Summary Log in
// @Description Checks email and password and returns a signed bearer token with the account's balances.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}
