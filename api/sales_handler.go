package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JartigaRox/000171124-practica10-seccion1/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for
// sales operations.
type salesHandler struct {
	sales  *sales.Service
	logger *zap.Logger
}

// newSalesHandler creates a new sales handler.
func newSalesHandler(svc *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		sales:  svc,
		logger: logger,
	}
}

// handleCreateSale handles the POST /api/sales endpoint.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var in sales.CreateSaleInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		respondError(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	sale, err := h.sales.CreateSale(ctx.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrMissingField):
			respondError(ctx, http.StatusBadRequest, "amount and id_customer are required")
		case errors.Is(err, sales.ErrInvalidAmount):
			respondError(ctx, http.StatusBadRequest, "amount must be a positive number")
		case errors.Is(err, sales.ErrUnknownCustomer), errors.Is(err, sales.ErrCustomerMissing):
			respondError(ctx, http.StatusNotFound, "the specified customer does not exist")
		default:
			respondError(ctx, http.StatusInternalServerError, "failed to record sale: "+err.Error())
		}
		return
	}

	respondCreated(ctx, "sale recorded successfully", sale)
}

// handleListSales handles the GET /api/sales endpoint.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	list, err := h.sales.ListSales(ctx.Request.Context())
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "failed to list sales: "+err.Error())
		return
	}

	respondList(ctx, list, len(list))
}

// handleSalesReport handles the GET /api/sales/report endpoint.
func (h *salesHandler) handleSalesReport(ctx *gin.Context) {
	report, err := h.sales.BuildReport(ctx.Request.Context())
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "failed to build sales report: "+err.Error())
		return
	}

	respondData(ctx, http.StatusOK, report)
}
