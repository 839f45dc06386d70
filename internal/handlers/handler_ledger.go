package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/SscSPs/bokforing_app/internal/middleware"
	"github.com/SscSPs/bokforing_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// ledgerHandler holds dependencies for ledger transaction handlers.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	posthog       *utils.PosthogClientWrapper
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, posthog *utils.PosthogClientWrapper) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, posthog: posthog}
}

// RegisterLedgerRoutes registers the ledger transaction routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, posthog *utils.PosthogClientWrapper) {
	registerValidators()
	h := newLedgerHandler(ledgerService, posthog)

	txns := rg.Group("/ledger/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transactionID", h.getTransaction)
		txns.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a ledger transaction
// @Description Validates and stores a balanced transaction (verifikation) with its posting lines
// @Tags ledger
// @Accept json
// @Produce json
// @Param transaction body dto.CreateLedgerTransactionRequest true "Transaction and posting lines"
// @Success 201 {object} dto.Result{data=dto.CreateLedgerTransactionResponse}
// @Failure 400 {object} dto.Result "Invalid input"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 422 {object} dto.Result "Unbalanced transaction"
// @Failure 500 {object} dto.Result "Failed to create transaction"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ledger/transactions [post]
func (h *ledgerHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLedgerTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid ledger transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	ownerID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), req.ToNewLedgerTransaction(ownerID))
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "ledger_transaction_created", map[string]any{
		"line_count": len(txn.Lines),
	})
	c.JSON(http.StatusCreated, dto.OK(dto.CreateLedgerTransactionResponse{ID: txn.ID}))
}

// getTransaction godoc
// @Summary Get a ledger transaction
// @Description Retrieves a transaction and its posting lines
// @Tags ledger
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.Result{data=dto.LedgerTransactionResponse}
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Transaction not found"
// @Failure 500 {object} dto.Result "Failed to get transaction"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ledger/transactions/{transactionID} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	ownerID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), transactionID, ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to get transaction")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToLedgerTransactionResponse(txn)))
}

// listTransactions godoc
// @Summary List ledger transactions
// @Description Lists the owner's transactions, newest first, with cursor pagination
// @Tags ledger
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.Result{data=dto.ListLedgerTransactionsResponse}
// @Failure 400 {object} dto.Result "Invalid query parameters"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 500 {object} dto.Result "Failed to list transactions"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ledger/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListLedgerTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters: "+err.Error()))
		return
	}

	ownerID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// deleteTransaction godoc
// @Summary Delete a ledger transaction
// @Description Removes a transaction and its posting lines. Deleting a missing transaction succeeds with deleted=false
// @Tags ledger
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.Result{data=dto.DeleteLedgerTransactionResponse}
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Transaction belongs to another owner"
// @Failure 500 {object} dto.Result "Failed to delete transaction"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ledger/transactions/{transactionID} [delete]
func (h *ledgerHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	ownerID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	deleted, err := h.ledgerService.DeleteTransaction(c.Request.Context(), transactionID, ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.DeleteLedgerTransactionResponse{Deleted: deleted}))
}
