package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hanz-sales/internal/domain"
)

// CustomerRepository define el contrato de persistencia para clientes.
// Los ids los asigna el cliente de la API, no la base.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) error
	GetByID(ctx context.Context, id int) (domain.Customer, error)
	Update(ctx context.Context, c domain.Customer) error
	Delete(ctx context.Context, id int) error
}

// PgCustomerRepository implementa CustomerRepository usando pgxpool.
type PgCustomerRepository struct {
	pool *pgxpool.Pool
}

func NewPgCustomerRepository(pool *pgxpool.Pool) *PgCustomerRepository {
	return &PgCustomerRepository{pool: pool}
}

func (r *PgCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	const query = `
		SELECT customer_id, first_name, last_name, email, signup_date
		FROM customers
		ORDER BY customer_id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	items := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		var signup time.Time
		if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &signup); err != nil {
			return nil, wrapError(err)
		}
		c.SignupDate = signup.Format(dateLayout)
		items = append(items, c)
	}
	return items, wrapError(rows.Err())
}

func (r *PgCustomerRepository) Create(ctx context.Context, c domain.Customer) error {
	const query = `
		INSERT INTO customers (customer_id, first_name, last_name, email, signup_date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		c.CustomerID,
		c.FirstName,
		c.LastName,
		c.Email,
		c.SignupDate,
	)
	return wrapError(err)
}

func (r *PgCustomerRepository) GetByID(ctx context.Context, id int) (domain.Customer, error) {
	const query = `
		SELECT customer_id, first_name, last_name, email, signup_date
		FROM customers
		WHERE customer_id = $1
	`
	var c domain.Customer
	var signup time.Time
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &signup)
	if err != nil {
		return domain.Customer{}, wrapError(err)
	}
	c.SignupDate = signup.Format(dateLayout)
	return c, nil
}

func (r *PgCustomerRepository) Update(ctx context.Context, c domain.Customer) error {
	const query = `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3, signup_date = $4
		WHERE customer_id = $5
	`
	tag, err := r.pool.Exec(ctx, query,
		c.FirstName,
		c.LastName,
		c.Email,
		c.SignupDate,
		c.CustomerID,
	)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgCustomerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
