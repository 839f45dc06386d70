package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/bokforing_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// routeOperations names the bookkeeping routes in usage events. Routes
// missing here are reported under a name derived from their path.
var routeOperations = map[string]string{
	"POST /api/v1/ledger/transactions":                    "create_ledger_transaction",
	"DELETE /api/v1/ledger/transactions/:transactionID":   "delete_ledger_transaction",
	"POST /api/v1/invoices/:documentID/postings":          "post_invoice",
	"POST /api/v1/invoices/:documentID/payments":          "register_invoice_payment",
	"POST /api/v1/supplier-invoices/:documentID/postings": "post_supplier_invoice",
	"POST /api/v1/supplier-invoices/:documentID/payments": "register_supplier_invoice_payment",
	"DELETE /api/v1/supplier-invoices/:documentID":        "delete_supplier_invoice",
	"POST /api/v1/payroll/runs":                           "run_payroll",
	"POST /api/v1/payroll/preview":                        "preview_payroll",
	"POST /api/v1/payroll/calculate":                      "calculate_payroll",
}

// PosthogMiddleware reports every successful write request as an
// "api_request" event tagged with its operation. Reads are not tracked.
// Handlers add their own outcome events through PosthogEvent.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		ownerID, exists := GetOwnerIDFromContext(c)
		if !exists {
			return
		}
		operation := OperationForRoute(c.Request.Method, c.FullPath())
		if operation == "" {
			return
		}

		props := map[string]any{
			"operation":   operation,
			"status_code": c.Writer.Status(),
		}
		if method, ok := c.Get(authMethodKey); ok {
			props["auth_method"] = method
		}
		if requestID := c.Writer.Header().Get("X-Request-ID"); requestID != "" {
			props["request_id"] = requestID
		}

		posthogClient.Enqueue(ownerID, "api_request", props)
	}
}

// OperationForRoute returns the operation name of a matched route, or ""
// for unmatched requests.
func OperationForRoute(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	if name, ok := routeOperations[method+" "+fullPath]; ok {
		return name
	}
	// "/api/v1/foo/:id" -> "post_api_v1_foo_id"
	name := strings.NewReplacer("/", "_", ":", "", "-", "_").Replace(strings.TrimPrefix(fullPath, "/"))
	return strings.ToLower(method) + "_" + name
}

// PosthogEvent sends a custom event from a handler, with the outcome
// details the route-level event does not have.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}

	ownerID, exists := GetOwnerIDFromContext(c)
	if !exists {
		return
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["route"] = c.FullPath()

	posthogClient.Enqueue(ownerID, eventName, properties)
}
