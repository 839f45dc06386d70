package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/SscSPs/bokforing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler holds dependencies for chart-of-accounts handlers.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// RegisterAccountRoutes registers the chart-of-accounts routes.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)
	rg.GET("/accounts", h.listAccounts)
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Lists every BAS account transactions may be posted to
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.Result{data=[]dto.AccountResponse}
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 500 {object} dto.Result "Failed to list accounts"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponses(accts)))
}
