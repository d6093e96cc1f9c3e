package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/JartigaRox/000171124-practica10-seccion1/internal/customers"
)

// LocalStorage provides an in-memory implementation for storing sales, used
// as a stand-in for PostgreSQL in tests. It emulates the foreign-key
// constraint against the given customer roster.
type LocalStorage struct {
	roster customers.Storage
	m      map[int]*Sale
	nextID int
}

// NewLocalStorage instantiates a new LocalStorage over the given roster.
func NewLocalStorage(roster customers.Storage) *LocalStorage {
	return &LocalStorage{
		roster: roster,
		m:      map[int]*Sale{},
	}
}

// Insert stores a sale, assigning id and created_at the way the database
// would. Returns ErrCustomerMissing if the customer is not in the roster.
func (l *LocalStorage) Insert(ctx context.Context, amount float64, customerID int) (*Sale, error) {
	if _, err := l.roster.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrCustomerMissing, customerID)
	}

	l.nextID++
	s := &Sale{
		ID:         l.nextID,
		Amount:     amount,
		CustomerID: customerID,
		CreatedAt:  time.Now(),
	}
	l.m[s.ID] = s
	return s, nil
}

// GetAll retrieves all sales joined with customer name and code, newest first.
func (l *LocalStorage) GetAll(ctx context.Context) ([]SaleWithCustomer, error) {
	sales := make([]SaleWithCustomer, 0, len(l.m))
	for _, s := range l.m {
		row := SaleWithCustomer{Sale: *s}
		if c, err := l.roster.GetByID(ctx, s.CustomerID); err == nil {
			row.CustomerName = c.Name
			row.CustomerCode = c.Code
		}
		sales = append(sales, row)
	}
	sort.Slice(sales, func(i, j int) bool {
		if !sales[i].CreatedAt.Equal(sales[j].CreatedAt) {
			return sales[i].CreatedAt.After(sales[j].CreatedAt)
		}
		return sales[i].ID > sales[j].ID
	})
	return sales, nil
}

// TotalsByCustomer sums sales per customer. Customers without sales produce
// no entry.
func (l *LocalStorage) TotalsByCustomer(ctx context.Context) ([]CustomerTotal, error) {
	sums := map[int]float64{}
	for _, s := range l.m {
		sums[s.CustomerID] += s.Amount
	}

	totals := make([]CustomerTotal, 0, len(sums))
	for customerID, total := range sums {
		name := ""
		if c, err := l.roster.GetByID(ctx, customerID); err == nil {
			name = c.Name
		}
		totals = append(totals, CustomerTotal{CustomerName: name, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].CustomerName < totals[j].CustomerName
	})
	return totals, nil
}
