package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hanz-sales/internal/domain"
)

// CategoryRepository define el contrato de persistencia para categorias.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (domain.Category, error)
	GetByID(ctx context.Context, id int) (domain.Category, error)
	Update(ctx context.Context, id int, name string) (domain.Category, error)
	Delete(ctx context.Context, id int) error
}

// PgCategoryRepository implementa CategoryRepository usando pgxpool.
type PgCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPgCategoryRepository(pool *pgxpool.Pool) *PgCategoryRepository {
	return &PgCategoryRepository{pool: pool}
}

func (r *PgCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const query = `
		SELECT category_id, category_name
		FROM categories
		ORDER BY category_id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	items := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.CategoryName); err != nil {
			return nil, wrapError(err)
		}
		items = append(items, c)
	}
	return items, wrapError(rows.Err())
}

func (r *PgCategoryRepository) Create(ctx context.Context, name string) (domain.Category, error) {
	const query = `
		INSERT INTO categories (category_name)
		VALUES ($1)
		RETURNING category_id
	`
	c := domain.Category{CategoryName: name}
	err := r.pool.QueryRow(ctx, query, name).Scan(&c.CategoryID)
	if err != nil {
		return domain.Category{}, wrapError(err)
	}
	return c, nil
}

func (r *PgCategoryRepository) GetByID(ctx context.Context, id int) (domain.Category, error) {
	const query = `
		SELECT category_id, category_name
		FROM categories
		WHERE category_id = $1
	`
	var c domain.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.CategoryID, &c.CategoryName)
	if err != nil {
		return domain.Category{}, wrapError(err)
	}
	return c, nil
}

func (r *PgCategoryRepository) Update(ctx context.Context, id int, name string) (domain.Category, error) {
	const query = `
		UPDATE categories
		SET category_name = $1
		WHERE category_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, name, id)
	if err != nil {
		return domain.Category{}, wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Category{}, domain.ErrNotFound
	}
	return domain.Category{CategoryID: id, CategoryName: name}, nil
}

func (r *PgCategoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
