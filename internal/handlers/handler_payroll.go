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

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
	posthog        *utils.PosthogClientWrapper
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade, posthog *utils.PosthogClientWrapper) *payrollHandler {
	return &payrollHandler{payrollService: ps, posthog: posthog}
}

// RegisterPayrollRoutes registers the payroll calculation and run routes.
func RegisterPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade, posthog *utils.PosthogClientWrapper) {
	registerValidators()
	h := newPayrollHandler(payrollService, posthog)

	payroll := rg.Group("/payroll")
	{
		payroll.POST("/calculate", h.calculate)
		payroll.POST("/preview", h.preview)
		payroll.POST("/runs", h.run)
	}
}

// calculate godoc
// @Summary Calculate a payslip
// @Description Computes gross pay, preliminary tax, employer social fees and net pay
// @Tags payroll
// @Accept json
// @Produce json
// @Param payroll body dto.PayrollCalculateRequest true "Salary and adjustment rows"
// @Success 200 {object} dto.Result{data=domain.PayrollResult}
// @Failure 400 {object} dto.Result "Invalid input"
// @Failure 422 {object} dto.Result "Payslip cannot be calculated"
// @Failure 500 {object} dto.Result "Failed to calculate payroll"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /payroll/calculate [post]
func (h *payrollHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayrollCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid payroll request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	result, err := h.payrollService.Calculate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate payroll")
		return
	}

	c.JSON(http.StatusOK, dto.OK(result))
}

// preview godoc
// @Summary Preview payroll postings
// @Description Computes the payslip and the ledger lines a payroll run would create
// @Tags payroll
// @Accept json
// @Produce json
// @Param payroll body dto.PayrollCalculateRequest true "Salary and adjustment rows"
// @Success 200 {object} dto.Result{data=dto.PayrollPreviewResponse}
// @Failure 400 {object} dto.Result "Invalid input"
// @Failure 422 {object} dto.Result "Payslip cannot be calculated or mapped"
// @Failure 500 {object} dto.Result "Failed to preview payroll"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /payroll/preview [post]
func (h *payrollHandler) preview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayrollCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid payroll request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	resp, err := h.payrollService.Preview(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to preview payroll")
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// run godoc
// @Summary Run payroll
// @Description Calculates the payslip and books it as one balanced ledger transaction
// @Tags payroll
// @Accept json
// @Produce json
// @Param payroll body dto.PayrollRunRequest true "Employee, period and salary"
// @Success 201 {object} dto.Result{data=dto.PayrollRunResponse}
// @Failure 400 {object} dto.Result "Invalid input"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 422 {object} dto.Result "Payslip cannot be calculated or mapped"
// @Failure 500 {object} dto.Result "Failed to run payroll"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /payroll/runs [post]
func (h *payrollHandler) run(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid payroll run request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	ownerID, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	resp, err := h.payrollService.Run(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to run payroll")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "payroll_run_booked", map[string]any{
		"period": req.Period,
	})
	c.JSON(http.StatusCreated, dto.OK(resp))
}
