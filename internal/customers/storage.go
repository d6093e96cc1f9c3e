package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no customer matches the given key.
var ErrNotFound = errors.New("customer not found")

// Storage is the main interface for customer roster access. The roster is
// read-only here: creation and removal happen in an external process.
type Storage interface {
	GetByID(ctx context.Context, id int) (*Customer, error)
	GetByCode(ctx context.Context, code string) (*Customer, error)
	GetAll(ctx context.Context) ([]Customer, error)
}

// PostgresStorage reads customers from PostgreSQL through parameterized queries.
type PostgresStorage struct {
	db *pgxpool.Pool
}

// NewPostgresStorage instantiates a customer storage backed by the given pool.
func NewPostgresStorage(db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// GetByID retrieves a customer by primary key.
// Returns ErrNotFound if no row matches.
func (p *PostgresStorage) GetByID(ctx context.Context, id int) (*Customer, error) {
	sql := `
		SELECT id, code, name, address, phone
		FROM customers
		WHERE id = $1
	`

	var c Customer
	err := p.db.QueryRow(ctx, sql, id).Scan(&c.ID, &c.Code, &c.Name, &c.Address, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer with id %d: %w", id, err)
	}

	return &c, nil
}

// GetByCode retrieves a customer by its unique business code.
// Returns ErrNotFound if no row matches.
func (p *PostgresStorage) GetByCode(ctx context.Context, code string) (*Customer, error) {
	sql := `
		SELECT id, code, name, address, phone
		FROM customers
		WHERE code = $1
	`

	var c Customer
	err := p.db.QueryRow(ctx, sql, code).Scan(&c.ID, &c.Code, &c.Name, &c.Address, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer with code %q: %w", code, err)
	}

	return &c, nil
}

// GetAll retrieves the whole roster ordered by id ascending.
func (p *PostgresStorage) GetAll(ctx context.Context) ([]Customer, error) {
	sql := `
		SELECT id, code, name, address, phone
		FROM customers
		ORDER BY id ASC
	`

	rows, err := p.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	defer rows.Close()

	customers := []Customer{}
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Address, &c.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return customers, nil
}
