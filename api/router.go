package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/JartigaRox/000171124-practica10-seccion1/internal/customers"
	"github.com/JartigaRox/000171124-practica10-seccion1/internal/sales"
)

// InitRoutes wires the PostgreSQL-backed services and registers all endpoints
// on the given Gin engine.
func InitRoutes(e *gin.Engine, db *pgxpool.Pool, logger *zap.Logger) {
	customerService := customers.NewService(customers.NewPostgresStorage(db), logger)
	salesService := sales.NewService(sales.NewPostgresStorage(db), customerService, logger)

	InitRoutesWithServices(e, customerService, salesService, logger)
}

// InitRoutesWithServices registers all endpoints on top of already-built
// services, letting tests substitute in-memory storage.
func InitRoutesWithServices(e *gin.Engine, customerService *customers.Service, salesService *sales.Service, logger *zap.Logger) {
	e.Use(RequestLogger(logger))

	customerHandler := newCustomerHandler(customerService, logger)
	salesHandler := newSalesHandler(salesService, logger)

	root := e.Group("/api")

	customerRoutes := root.Group("/customers")
	customerRoutes.GET("", customerHandler.handleListCustomers)
	customerRoutes.GET("/search", customerHandler.handleSearchCustomer)
	customerRoutes.GET("/:id", customerHandler.handleGetCustomer)

	salesRoutes := root.Group("/sales")
	salesRoutes.POST("", salesHandler.handleCreateSale)
	salesRoutes.GET("", salesHandler.handleListSales)
	salesRoutes.GET("/report", salesHandler.handleSalesReport)

	e.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "server is up and running",
		})
	})

	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "route not found",
		})
	})
}
