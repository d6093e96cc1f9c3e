package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCustomerMissing is returned when the insert hits the foreign-key
// constraint, i.e. the referenced customer vanished between the validation
// read and the write. The constraint is the guarantee; the validation
// pre-check only exists for the better error message.
var ErrCustomerMissing = errors.New("sale references a nonexistent customer")

// pgForeignKeyViolation is the PostgreSQL error code for a foreign-key
// constraint violation.
const pgForeignKeyViolation = "23503"

// Storage is the main interface for the sales storage layer. Sales are
// insert-only: no update or delete operations exist.
type Storage interface {
	Insert(ctx context.Context, amount float64, customerID int) (*Sale, error)
	GetAll(ctx context.Context) ([]SaleWithCustomer, error)
	TotalsByCustomer(ctx context.Context) ([]CustomerTotal, error)
}

// PostgresStorage persists sales in PostgreSQL through parameterized queries.
type PostgresStorage struct {
	db *pgxpool.Pool
}

// NewPostgresStorage instantiates a sales storage backed by the given pool.
func NewPostgresStorage(db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// Insert persists a sale atomically. The id and created_at come back from
// the database: created_at is NOW() server-side, so callers can neither
// backdate nor skew the timestamp.
func (p *PostgresStorage) Insert(ctx context.Context, amount float64, customerID int) (*Sale, error) {
	sql := `
		INSERT INTO sales (amount, id_customer, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, amount, id_customer, created_at
	`

	var s Sale
	err := p.db.QueryRow(ctx, sql, amount, customerID).Scan(
		&s.ID,
		&s.Amount,
		&s.CustomerID,
		&s.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, fmt.Errorf("%w: id %d", ErrCustomerMissing, customerID)
		}
		return nil, fmt.Errorf("failed to insert sale: %w", err)
	}

	return &s, nil
}

// GetAll retrieves all sales joined with their customer's name and code,
// newest first.
func (p *PostgresStorage) GetAll(ctx context.Context) ([]SaleWithCustomer, error) {
	sql := `
		SELECT s.id, s.amount, s.id_customer, s.created_at,
		       c.name AS customer_name, c.code AS customer_code
		FROM sales s
		LEFT JOIN customers c ON s.id_customer = c.id
		ORDER BY s.created_at DESC
	`

	rows, err := p.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sales: %w", err)
	}
	defer rows.Close()

	sales := []SaleWithCustomer{}
	for rows.Next() {
		var s SaleWithCustomer
		err := rows.Scan(
			&s.ID,
			&s.Amount,
			&s.CustomerID,
			&s.CreatedAt,
			&s.CustomerName,
			&s.CustomerCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return sales, nil
}

// TotalsByCustomer sums sales per customer over the sales-customers join.
// Customers without sales produce no row.
func (p *PostgresStorage) TotalsByCustomer(ctx context.Context) ([]CustomerTotal, error) {
	sql := `
		SELECT c.name, SUM(s.amount) AS total_sales
		FROM sales s
		JOIN customers c ON s.id_customer = c.id
		GROUP BY c.id, c.name
		ORDER BY total_sales DESC, c.id ASC
	`

	rows, err := p.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	defer rows.Close()

	totals := []CustomerTotal{}
	for rows.Next() {
		var t CustomerTotal
		if err := rows.Scan(&t.CustomerName, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan customer total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return totals, nil
}
