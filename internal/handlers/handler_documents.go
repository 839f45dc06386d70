package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/SscSPs/bokforing_app/internal/middleware"
	"github.com/SscSPs/bokforing_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// documentHandler holds dependencies for invoice and supplier invoice postings.
type documentHandler struct {
	postingService portssvc.DocumentPostingSvcFacade
	posthog        *utils.PosthogClientWrapper
}

func newDocumentHandler(ps portssvc.DocumentPostingSvcFacade, posthog *utils.PosthogClientWrapper) *documentHandler {
	return &documentHandler{postingService: ps, posthog: posthog}
}

// RegisterDocumentRoutes registers the posting routes of both document kinds.
func RegisterDocumentRoutes(rg *gin.RouterGroup, postingService portssvc.DocumentPostingSvcFacade, posthog *utils.PosthogClientWrapper) {
	registerValidators()
	h := newDocumentHandler(postingService, posthog)

	invoices := rg.Group("/invoices/:documentID")
	{
		invoices.POST("/postings", h.postToInvoice)
		invoices.POST("/payments", h.registerInvoicePayment)
	}

	supplierInvoices := rg.Group("/supplier-invoices/:documentID")
	{
		supplierInvoices.POST("/postings", h.postToSupplierInvoice)
		supplierInvoices.POST("/payments", h.registerSupplierInvoicePayment)
		supplierInvoices.DELETE("", h.deleteSupplierInvoice)
	}
}

// postToInvoice godoc
// @Summary Post a transaction against an invoice
// @Description Records a ledger transaction and derives the invoice booking and payment status from its accounts
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path string true "Invoice ID"
// @Param posting body dto.PostToDocumentRequest true "Transaction and posting lines"
// @Success 201 {object} dto.Result{data=dto.DocumentPostingResponse}
// @Failure 400 {object} dto.Result "Invalid input"
// @Failure 404 {object} dto.Result "Invoice not found"
// @Failure 409 {object} dto.Result "Invoice status does not allow the posting"
// @Failure 422 {object} dto.Result "Unbalanced transaction"
// @Failure 500 {object} dto.Result "Failed to post to invoice"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /invoices/{documentID}/postings [post]
func (h *documentHandler) postToInvoice(c *gin.Context) {
	h.post(c, domain.KindInvoice)
}

// postToSupplierInvoice godoc
// @Summary Post a transaction against a supplier invoice
// @Description Records a ledger transaction and derives the supplier invoice booking and payment status from its accounts
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path string true "Supplier invoice ID"
// @Param posting body dto.PostToDocumentRequest true "Transaction and posting lines"
// @Success 201 {object} dto.Result{data=dto.DocumentPostingResponse}
// @Failure 400 {object} dto.Result "Invalid input"
// @Failure 404 {object} dto.Result "Supplier invoice not found"
// @Failure 409 {object} dto.Result "Supplier invoice status does not allow the posting"
// @Failure 422 {object} dto.Result "Unbalanced transaction"
// @Failure 500 {object} dto.Result "Failed to post to supplier invoice"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /supplier-invoices/{documentID}/postings [post]
func (h *documentHandler) postToSupplierInvoice(c *gin.Context) {
	h.post(c, domain.KindSupplierInvoice)
}

func (h *documentHandler) post(c *gin.Context, kind domain.DocumentKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	var req dto.PostToDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid posting request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	ownerID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	result, err := h.postingService.PostToDocument(c.Request.Context(), ownerID, kind, documentID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to post to "+kind.String())
		return
	}

	h.respondPosted(c, "document_posted", result)
}

// registerInvoicePayment godoc
// @Summary Register a customer payment
// @Description Posts bank against accounts receivable for the invoice and marks it paid
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path string true "Invoice ID"
// @Param payment body dto.RegisterPaymentRequest true "Payment"
// @Success 201 {object} dto.Result{data=dto.DocumentPostingResponse}
// @Failure 400 {object} dto.Result "Invalid input"
// @Failure 404 {object} dto.Result "Invoice not found"
// @Failure 409 {object} dto.Result "Invoice is not booked or already paid"
// @Failure 500 {object} dto.Result "Failed to register payment"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /invoices/{documentID}/payments [post]
func (h *documentHandler) registerInvoicePayment(c *gin.Context) {
	h.registerPayment(c, domain.KindInvoice)
}

// registerSupplierInvoicePayment godoc
// @Summary Register a supplier payment
// @Description Posts accounts payable against bank for the supplier invoice and marks it paid
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path string true "Supplier invoice ID"
// @Param payment body dto.RegisterPaymentRequest true "Payment"
// @Success 201 {object} dto.Result{data=dto.DocumentPostingResponse}
// @Failure 400 {object} dto.Result "Invalid input"
// @Failure 404 {object} dto.Result "Supplier invoice not found"
// @Failure 409 {object} dto.Result "Supplier invoice is not booked or already paid"
// @Failure 500 {object} dto.Result "Failed to register payment"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /supplier-invoices/{documentID}/payments [post]
func (h *documentHandler) registerSupplierInvoicePayment(c *gin.Context) {
	h.registerPayment(c, domain.KindSupplierInvoice)
}

func (h *documentHandler) registerPayment(c *gin.Context, kind domain.DocumentKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid payment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	ownerID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	result, err := h.postingService.RegisterPayment(c.Request.Context(), ownerID, kind, documentID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to register payment")
		return
	}

	h.respondPosted(c, "document_payment_registered", result)
}

// deleteSupplierInvoice godoc
// @Summary Delete a supplier invoice
// @Description Deletes the supplier invoice together with its booking and payment transactions
// @Tags documents
// @Produce json
// @Param documentID path string true "Supplier invoice ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Supplier invoice not found"
// @Failure 500 {object} dto.Result "Failed to delete supplier invoice"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /supplier-invoices/{documentID} [delete]
func (h *documentHandler) deleteSupplierInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	ownerID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.postingService.DeleteSupplierInvoice(c.Request.Context(), ownerID, documentID); err != nil {
		respondError(c, logger, err, "Failed to delete supplier invoice")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "supplier_invoice_deleted", nil)
	c.Status(http.StatusNoContent)
}

func (h *documentHandler) respondPosted(c *gin.Context, event string, result *portssvc.PostingResult) {
	middleware.PosthogEvent(c, h.posthog, event, map[string]any{
		"document_kind": string(result.Document.Kind),
		"transition":    string(result.Transition.Kind),
	})
	c.JSON(http.StatusCreated, dto.OK(dto.DocumentPostingResponse{
		TransactionID: result.Transaction.ID,
		Transition:    string(result.Transition.Kind),
		Document:      dto.ToDocumentResponse(result.Document),
	}))
}
