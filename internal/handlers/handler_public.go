package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// publicHandler serves unauthenticated landing page data.
type publicHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerPublicRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &publicHandler{settingsService: settingsService}

	rg.GET("/public-stats", h.getPublicStats)
	rg.GET("/public/prelogin-message", h.getPreloginMessage)
}

// getPublicStats godoc
// @Summary Public stats
// @Description Share price and last-updated label for the landing page. Unset values are null.
// @Tags public
// @Produce json
// @Success 200 {object} dto.PublicStatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /public-stats [get]
func (h *publicHandler) getPublicStats(c *gin.Context) {
	stats, err := h.settingsService.GetPublicStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to load public stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToPublicStatsResponse(stats))
}

// getPreloginMessage godoc
// @Summary Pre-login message
// @Description The announcement shown above the login form, as markdown source and rendered HTML.
// @Tags public
// @Produce json
// @Success 200 {object} dto.PublicPreloginMessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /public/prelogin-message [get]
func (h *publicHandler) getPreloginMessage(c *gin.Context) {
	msg, err := h.settingsService.GetPreloginMessage(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to load message")
		return
	}
	c.JSON(http.StatusOK, dto.ToPublicPreloginMessageResponse(msg))
}
