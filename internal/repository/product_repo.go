package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hanz-sales/internal/domain"
)

// ProductRepository define el contrato de persistencia para productos.
// Las lecturas devuelven el producto unido con el nombre de su categoria.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, name string, categoryID int) (domain.Product, error)
	GetByID(ctx context.Context, id int) (domain.Product, error)
	Update(ctx context.Context, id int, name string, categoryID int) (domain.Product, error)
	Delete(ctx context.Context, id int) error
}

// PgProductRepository implementa ProductRepository usando pgxpool.
type PgProductRepository struct {
	pool *pgxpool.Pool
}

func NewPgProductRepository(pool *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pool: pool}
}

func (r *PgProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	const query = `
		SELECT p.product_id, p.product_name, p.category_id, c.category_name
		FROM products p
		JOIN categories c ON c.category_id = p.category_id
		ORDER BY p.product_id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	items := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.CategoryID, &p.CategoryName); err != nil {
			return nil, wrapError(err)
		}
		items = append(items, p)
	}
	return items, wrapError(rows.Err())
}

func (r *PgProductRepository) Create(ctx context.Context, name string, categoryID int) (domain.Product, error) {
	const query = `
		INSERT INTO products (product_name, category_id)
		VALUES ($1, $2)
		RETURNING product_id
	`
	p := domain.Product{ProductName: name, CategoryID: categoryID}
	err := r.pool.QueryRow(ctx, query, name, categoryID).Scan(&p.ProductID)
	if err != nil {
		return domain.Product{}, wrapError(err)
	}
	return p, nil
}

func (r *PgProductRepository) GetByID(ctx context.Context, id int) (domain.Product, error) {
	const query = `
		SELECT p.product_id, p.product_name, p.category_id, c.category_name
		FROM products p
		JOIN categories c ON c.category_id = p.category_id
		WHERE p.product_id = $1
	`
	var p domain.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ProductID, &p.ProductName, &p.CategoryID, &p.CategoryName)
	if err != nil {
		return domain.Product{}, wrapError(err)
	}
	return p, nil
}

func (r *PgProductRepository) Update(ctx context.Context, id int, name string, categoryID int) (domain.Product, error) {
	const query = `
		UPDATE products
		SET product_name = $1, category_id = $2
		WHERE product_id = $3
	`
	tag, err := r.pool.Exec(ctx, query, name, categoryID, id)
	if err != nil {
		return domain.Product{}, wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Product{}, domain.ErrNotFound
	}
	return domain.Product{ProductID: id, ProductName: name, CategoryID: categoryID}, nil
}

func (r *PgProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
