package sales

import "time"

// Sale represents a single recorded transaction in the system. The id and
// created_at are assigned by storage at insertion time and are immutable;
// sales are never updated or deleted.
type Sale struct {
	ID         int       `json:"id"`
	Amount     float64   `json:"amount"`
	CustomerID int       `json:"id_customer"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaleWithCustomer is a sale joined with its owning customer's name and code,
// as returned by the sales listing.
type SaleWithCustomer struct {
	Sale
	CustomerName string `json:"customer_name"`
	CustomerCode string `json:"customer_code"`
}

// CustomerTotal is the per-customer sum produced by joining sales with
// customers. Customers with zero sales never appear.
type CustomerTotal struct {
	CustomerName string
	Total        float64
}

// ReportRow is one customer's share of the sales distribution. Derived per
// request, never persisted.
type ReportRow struct {
	CustomerName string  `json:"customer_name"`
	TotalSales   float64 `json:"total_sales"`
	Percentage   float64 `json:"percentage"`
}

// CreateSaleInput carries the raw sale fields as received from the caller.
// Pointer fields distinguish absent values from zero values.
type CreateSaleInput struct {
	Amount     *float64 `json:"amount"`
	CustomerID *int     `json:"id_customer"`
}
