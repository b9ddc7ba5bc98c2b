package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// adminSettingsHandler reads and writes the global settings.
type adminSettingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerAdminSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &adminSettingsHandler{settingsService: settingsService}

	rg.GET("/last-updated", h.getLastUpdated)
	rg.POST("/last-updated", h.setLastUpdated)
	rg.GET("/share-price", h.getSharePrice)
	rg.POST("/share-price", h.setSharePrice)
	rg.GET("/prelogin-message", h.getPreloginMessage)
	rg.POST("/prelogin-message", h.setPreloginMessage)
}

// getLastUpdated godoc
// @Summary Get last-updated label
// @Tags settings
// @Produce json
// @Success 200 {object} dto.LastUpdatedResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/last-updated [get]
func (h *adminSettingsHandler) getLastUpdated(c *gin.Context) {
	value, err := h.settingsService.GetSetting(c.Request.Context(), domain.SettingLastUpdated)
	if err != nil {
		respondWithError(c, err, "Failed to load setting")
		return
	}
	c.JSON(http.StatusOK, dto.LastUpdatedResponse{LastUpdated: value})
}

// setLastUpdated godoc
// @Summary Set last-updated label
// @Tags settings
// @Accept json
// @Produce json
// @Param body body dto.LastUpdatedRequest true "Label"
// @Success 200 {object} dto.SavedLastUpdatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/last-updated [post]
func (h *adminSettingsHandler) setLastUpdated(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.LastUpdatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	if err := h.settingsService.SetSetting(c.Request.Context(), identity, domain.SettingLastUpdated, req.LastUpdated); err != nil {
		respondWithError(c, err, "Failed to save setting")
		return
	}
	c.JSON(http.StatusOK, dto.SavedLastUpdatedResponse{Saved: true, LastUpdated: strings.TrimSpace(req.LastUpdated)})
}

// getSharePrice godoc
// @Summary Get share price
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SharePriceResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/share-price [get]
func (h *adminSettingsHandler) getSharePrice(c *gin.Context) {
	value, err := h.settingsService.GetSetting(c.Request.Context(), domain.SettingSharePrice)
	if err != nil {
		respondWithError(c, err, "Failed to load setting")
		return
	}
	c.JSON(http.StatusOK, dto.SharePriceResponse{SharePrice: dto.SharePriceFromSetting(value)})
}

// setSharePrice godoc
// @Summary Set share price
// @Tags settings
// @Accept json
// @Produce json
// @Param body body dto.SharePriceRequest true "Price"
// @Success 200 {object} dto.SavedSharePriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/share-price [post]
func (h *adminSettingsHandler) setSharePrice(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.SharePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	if err := h.settingsService.SetSetting(c.Request.Context(), identity, domain.SettingSharePrice, req.SharePrice.String()); err != nil {
		respondWithError(c, err, "Failed to save setting")
		return
	}
	price, _ := req.SharePrice.Float64()
	c.JSON(http.StatusOK, dto.SavedSharePriceResponse{Saved: true, SharePrice: price})
}

// getPreloginMessage godoc
// @Summary Get pre-login message source
// @Tags settings
// @Produce json
// @Success 200 {object} dto.PreloginMessageResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/prelogin-message [get]
func (h *adminSettingsHandler) getPreloginMessage(c *gin.Context) {
	value, err := h.settingsService.GetSetting(c.Request.Context(), domain.SettingPreloginMessage)
	if err != nil {
		respondWithError(c, err, "Failed to load setting")
		return
	}
	c.JSON(http.StatusOK, dto.PreloginMessageResponse{Message: value})
}

// setPreloginMessage godoc
// @Summary Set pre-login message
// @Description Markdown shown above the login form. An empty message hides the banner.
// @Tags settings
// @Accept json
// @Produce json
// @Param body body dto.PreloginMessageRequest true "Message"
// @Success 200 {object} dto.SavedPreloginMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/prelogin-message [post]
func (h *adminSettingsHandler) setPreloginMessage(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.PreloginMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	if err := h.settingsService.SetSetting(c.Request.Context(), identity, domain.SettingPreloginMessage, *req.Message); err != nil {
		respondWithError(c, err, "Failed to save setting")
		return
	}
	c.JSON(http.StatusOK, dto.SavedPreloginMessageResponse{Saved: true, Message: *req.Message})
}
