package handlers

import (
	"net/http"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/SscSPs/fund_balance_app/internal/view"
	"github.com/gin-gonic/gin"
)

// adminViewLimit caps how many accounts the admin render tree lists.
const adminViewLimit = 1000

// meHandler serves the caller's own account.
type meHandler struct {
	accountService  portssvc.AccountSvcFacade
	settingsService portssvc.SettingsSvcFacade
}

func registerMeRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, settingsService portssvc.SettingsSvcFacade) {
	h := &meHandler{accountService: accountService, settingsService: settingsService}

	me := rg.Group("/me")
	{
		me.GET("", h.getMe)
		me.GET("/view", h.getView)
		me.PATCH("/password", h.changePassword)
	}
}

// getMe godoc
// @Summary Get own account
// @Description Returns the caller's balance, deposits, performance, last-updated label and yearly summaries.
// @Tags me
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *meHandler) getMe(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	summary, err := h.accountService.GetSelf(c.Request.Context(), identity.AccountID)
	if err != nil {
		respondWithError(c, err, "Failed to load account")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeResponse(summary))
}

// getView godoc
// @Summary Get render tree
// @Description Returns the role-specific render tree the browser client draws.
// @Tags me
// @Produce json
// @Success 200 {object} view.Node
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/view [get]
func (h *meHandler) getView(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	summary, err := h.accountService.GetSelf(ctx, identity.AccountID)
	if err != nil {
		respondWithError(c, err, "Failed to load account")
		return
	}
	data := view.Data{Summary: summary}

	if identity.IsAdmin() {
		accounts, err := h.accountService.ListAccounts(ctx, identity, adminViewLimit, 0)
		if err != nil {
			respondWithError(c, err, "Failed to list accounts")
			return
		}
		data.Accounts = accounts

		settings, err := h.loadSettings(c)
		if err != nil {
			respondWithError(c, err, "Failed to load settings")
			return
		}
		data.Settings = settings
	}

	tree, err := view.Render(identity.Role, data)
	if err != nil {
		respondWithError(c, err, "Failed to render view")
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (h *meHandler) loadSettings(c *gin.Context) (view.Settings, error) {
	var out view.Settings
	targets := map[domain.SettingKey]**string{
		domain.SettingLastUpdated:     &out.LastUpdated,
		domain.SettingSharePrice:      &out.SharePrice,
		domain.SettingPreloginMessage: &out.PreloginMessage,
	}
	for key, dst := range targets {
		value, err := h.settingsService.GetSetting(c.Request.Context(), key)
		if err != nil {
			return view.Settings{}, err
		}
		*dst = value
	}
	return out, nil
}

// changePassword godoc
// @Summary Change own password
// @Description Replaces the caller's password after checking the current one. Existing tokens stop working.
// @Tags me
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/password [patch]
func (h *meHandler) changePassword(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	if err := h.accountService.ChangePassword(c.Request.Context(), identity, req.CurrentPassword, req.NewPassword); err != nil {
		respondWithError(c, err, "Failed to change password")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedResponse{Updated: true})
}
