package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// adminUserHandler handles admin management of investor accounts.
type adminUserHandler struct {
	accountService  portssvc.AccountSvcFacade
	settingsService portssvc.SettingsSvcFacade
}

// registerAdminUserRoutes registers account and yearly snapshot routes. The group must already
// require the admin role.
func registerAdminUserRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, settingsService portssvc.SettingsSvcFacade) {
	h := &adminUserHandler{accountService: accountService, settingsService: settingsService}

	users := rg.Group("/users")
	{
		users.GET("", h.listAccounts)
		users.POST("", h.createAccount)
		users.PATCH("/:id/balance", h.setBalance)
		users.PATCH("/:id/deposit", h.setDeposit)
		users.POST("/:id/reset-password", h.resetPassword)
		users.DELETE("/:id", h.deleteAccount)

		users.GET("/:id/years", h.listYears)
		users.GET("/:id/year/:year", h.getYear)
		users.PATCH("/:id/year/:year", h.setYear)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists all accounts, newest first, each with its derived performance.
// @Tags admin
// @Produce json
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminUserHandler) listAccounts(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, "query parameters", err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), identity, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// createAccount godoc
// @Summary Create an account
// @Description Creates an investor (or admin) account. The response echoes the initial password once.
// @Tags admin
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.CreateAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [post]
func (h *adminUserHandler) createAccount(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), identity, req)
	if err != nil {
		respondWithError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreateAccountResponse(account, req.Password))
}

// setBalance godoc
// @Summary Set balance
// @Description Overwrites the account's current balance in cents.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param body body dto.SetBalanceRequest true "New balance"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/balance [patch]
func (h *adminUserHandler) setBalance(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, "account id", err)
		return
	}
	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	if err := h.accountService.SetBalance(c.Request.Context(), identity, uri.ID, *req.BalanceCents); err != nil {
		respondWithError(c, err, "Failed to update balance")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedResponse{Updated: true})
}

// setDeposit godoc
// @Summary Set deposits
// @Description Overwrites the account's total deposits in cents.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param body body dto.SetDepositRequest true "New deposit total"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/deposit [patch]
func (h *adminUserHandler) setDeposit(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, "account id", err)
		return
	}
	var req dto.SetDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	if err := h.accountService.SetDeposit(c.Request.Context(), identity, uri.ID, *req.DepositCents); err != nil {
		respondWithError(c, err, "Failed to update deposit")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedResponse{Updated: true})
}

// resetPassword godoc
// @Summary Reset password
// @Description Replaces the account's password with a fresh 6-digit code and returns it once.
// @Tags admin
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.ResetPasswordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/reset-password [post]
func (h *adminUserHandler) resetPassword(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, "account id", err)
		return
	}

	password, err := h.accountService.ResetPassword(c.Request.Context(), identity, uri.ID)
	if err != nil {
		respondWithError(c, err, "Failed to reset password")
		return
	}
	c.JSON(http.StatusOK, dto.ResetPasswordResponse{Updated: true, Password: password})
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes the account and its yearly snapshots. Admins cannot delete themselves.
// @Tags admin
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *adminUserHandler) deleteAccount(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, "account id", err)
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), identity, uri.ID); err != nil {
		respondWithError(c, err, "Failed to delete account")
		return
	}
	c.JSON(http.StatusOK, dto.DeletedResponse{Deleted: true})
}

// listYears godoc
// @Summary List yearly snapshots
// @Description Returns every stored yearly snapshot of the account, newest year first.
// @Tags admin
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {array} dto.SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/years [get]
func (h *adminUserHandler) listYears(c *gin.Context) {
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, "account id", err)
		return
	}

	snaps, err := h.settingsService.ListYearlySnapshots(c.Request.Context(), uri.ID)
	if err != nil {
		respondWithError(c, err, "Failed to list yearly snapshots")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSnapshotResponse(snaps))
}

// getYear godoc
// @Summary Get yearly snapshot
// @Description Returns one year's snapshot; zero values when none has been stored.
// @Tags admin
// @Produce json
// @Param id path int true "Account ID"
// @Param year path int true "Year"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/year/{year} [get]
func (h *adminUserHandler) getYear(c *gin.Context) {
	var uri dto.YearURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, "path parameters", err)
		return
	}

	snap, err := h.settingsService.GetYearlySnapshot(c.Request.Context(), uri.ID, uri.Year)
	if err != nil {
		respondWithError(c, err, "Failed to load yearly snapshot")
		return
	}
	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snap))
}

// setYear godoc
// @Summary Set yearly snapshot
// @Description Partially updates one year's deposits and/or ending balance.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param year path int true "Year"
// @Param body body dto.SnapshotRequest true "Fields to change"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/year/{year} [patch]
func (h *adminUserHandler) setYear(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var uri dto.YearURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, "path parameters", err)
		return
	}
	var req dto.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "request body", err)
		return
	}

	snap, err := h.settingsService.SetYearlySnapshot(c.Request.Context(), identity, req.ToSnapshotUpdate(uri.ID, uri.Year))
	if err != nil {
		respondWithError(c, err, "Failed to save yearly snapshot")
		return
	}
	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snap))
}
