package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JartigaRox/000171124-practica10-seccion1/internal/customers"
)

// customerHandler holds the customer service and implements HTTP handlers
// for customer lookups.
type customerHandler struct {
	customers *customers.Service
	logger    *zap.Logger
}

// newCustomerHandler creates a new customer handler.
func newCustomerHandler(svc *customers.Service, logger *zap.Logger) *customerHandler {
	return &customerHandler{
		customers: svc,
		logger:    logger,
	}
}

// handleListCustomers handles the GET /api/customers endpoint.
func (h *customerHandler) handleListCustomers(ctx *gin.Context) {
	list, err := h.customers.ListAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "failed to list customers: "+err.Error())
		return
	}

	respondList(ctx, list, len(list))
}

// handleGetCustomer handles the GET /api/customers/:id endpoint.
func (h *customerHandler) handleGetCustomer(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := h.customers.GetByID(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidID):
			respondError(ctx, http.StatusBadRequest, "invalid customer id")
		case errors.Is(err, customers.ErrNotFound):
			respondError(ctx, http.StatusNotFound, "customer not found")
		default:
			respondError(ctx, http.StatusInternalServerError, "failed to get customer: "+err.Error())
		}
		return
	}

	respondData(ctx, http.StatusOK, customer)
}

// handleSearchCustomer handles the GET /api/customers/search?code= endpoint.
func (h *customerHandler) handleSearchCustomer(ctx *gin.Context) {
	code := ctx.Query("code")

	customer, err := h.customers.GetByCode(ctx.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrEmptyCode):
			respondError(ctx, http.StatusBadRequest, "query parameter 'code' is required")
		case errors.Is(err, customers.ErrNotFound):
			respondError(ctx, http.StatusNotFound, "no customer with that code")
		default:
			respondError(ctx, http.StatusInternalServerError, "failed to search customer: "+err.Error())
		}
		return
	}

	respondData(ctx, http.StatusOK, customer)
}
