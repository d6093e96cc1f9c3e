package customers

import (
	"context"
	"sort"
)

// LocalStorage provides an in-memory implementation of the customer roster,
// used as a stand-in for PostgreSQL in tests.
type LocalStorage struct {
	m map[int]*Customer
}

// NewLocalStorage instantiates a new LocalStorage with an empty roster.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[int]*Customer{},
	}
}

// Put seeds a customer into the roster.
func (l *LocalStorage) Put(c *Customer) {
	l.m[c.ID] = c
}

// GetByID retrieves a customer by id.
// Returns ErrNotFound if the customer is not present.
func (l *LocalStorage) GetByID(_ context.Context, id int) (*Customer, error) {
	c, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// GetByCode retrieves a customer by business code.
// Returns ErrNotFound if no customer carries the code.
func (l *LocalStorage) GetByCode(_ context.Context, code string) (*Customer, error) {
	for _, c := range l.m {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// GetAll retrieves all customers ordered by id ascending.
func (l *LocalStorage) GetAll(_ context.Context) ([]Customer, error) {
	customers := make([]Customer, 0, len(l.m))
	for _, c := range l.m {
		customers = append(customers, *c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}
