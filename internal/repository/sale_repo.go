package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hanz-sales/internal/domain"
)

// SaleRepository define el contrato de persistencia para ventas,
// incluida la busqueda sobre la vista sales_denorm.
type SaleRepository interface {
	List(ctx context.Context) ([]domain.Sale, error)
	Create(ctx context.Context, s domain.Sale) error
	GetByID(ctx context.Context, id int) (domain.Sale, error)
	Update(ctx context.Context, s domain.Sale) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, f domain.SaleSearchFilter) ([]domain.SaleSearchRow, error)
}

// PgSaleRepository implementa SaleRepository usando pgxpool.
type PgSaleRepository struct {
	pool *pgxpool.Pool
}

func NewPgSaleRepository(pool *pgxpool.Pool) *PgSaleRepository {
	return &PgSaleRepository{pool: pool}
}

func (r *PgSaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	const query = `
		SELECT sale_id, product_id, sale_date, quantity, price, customer_id, region_id
		FROM sales_fact
		ORDER BY sale_id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	items := []domain.Sale{}
	for rows.Next() {
		var s domain.Sale
		var saleDate time.Time
		if err := rows.Scan(&s.SaleID, &s.ProductID, &saleDate, &s.Quantity, &s.Price, &s.CustomerID, &s.RegionID); err != nil {
			return nil, wrapError(err)
		}
		s.SaleDate = saleDate.Format(dateLayout)
		items = append(items, s)
	}
	return items, wrapError(rows.Err())
}

func (r *PgSaleRepository) Create(ctx context.Context, s domain.Sale) error {
	const query = `
		INSERT INTO sales_fact (sale_id, product_id, sale_date, quantity, price, customer_id, region_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		s.SaleID,
		s.ProductID,
		s.SaleDate,
		s.Quantity,
		s.Price,
		s.CustomerID,
		s.RegionID,
	)
	return wrapError(err)
}

func (r *PgSaleRepository) GetByID(ctx context.Context, id int) (domain.Sale, error) {
	const query = `
		SELECT sale_id, product_id, sale_date, quantity, price, customer_id, region_id
		FROM sales_fact
		WHERE sale_id = $1
	`
	var s domain.Sale
	var saleDate time.Time
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.SaleID, &s.ProductID, &saleDate, &s.Quantity, &s.Price, &s.CustomerID, &s.RegionID)
	if err != nil {
		return domain.Sale{}, wrapError(err)
	}
	s.SaleDate = saleDate.Format(dateLayout)
	return s, nil
}

func (r *PgSaleRepository) Update(ctx context.Context, s domain.Sale) error {
	const query = `
		UPDATE sales_fact
		SET product_id = $1, sale_date = $2, quantity = $3, price = $4, customer_id = $5, region_id = $6
		WHERE sale_id = $7
	`
	tag, err := r.pool.Exec(ctx, query,
		s.ProductID,
		s.SaleDate,
		s.Quantity,
		s.Price,
		s.CustomerID,
		s.RegionID,
		s.SaleID,
	)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgSaleRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sales_fact WHERE sale_id = $1`, id)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search arma el WHERE de forma conjuntiva; los filtros ausentes se omiten.
func (r *PgSaleRepository) Search(ctx context.Context, f domain.SaleSearchFilter) ([]domain.SaleSearchRow, error) {
	where := []string{}
	args := []any{}

	add := func(cond string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.ProductName != "" {
		add("product_name ILIKE $%d", "%"+f.ProductName+"%")
	}
	if f.CategoryName != "" {
		add("product_category ILIKE $%d", "%"+f.CategoryName+"%")
	}
	if f.RegionName != "" {
		add("region ILIKE $%d", "%"+f.RegionName+"%")
	}
	if f.CustomerID > 0 {
		add("customer_id = $%d", f.CustomerID)
	}
	if f.DateFrom != "" {
		add("sale_date >= $%d", f.DateFrom)
	}
	if f.DateTo != "" {
		add("sale_date <= $%d", f.DateTo)
	}

	query := `
		SELECT sale_id, sale_date, quantity, price, product_id, product_name,
		       product_category, customer_id, first_name, last_name, signup_date, region
		FROM sales_denorm
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sale_id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	items := []domain.SaleSearchRow{}
	for rows.Next() {
		var row domain.SaleSearchRow
		var saleDate, signupDate time.Time
		if err := rows.Scan(
			&row.SaleID,
			&saleDate,
			&row.Quantity,
			&row.Price,
			&row.ProductID,
			&row.ProductName,
			&row.ProductCategory,
			&row.CustomerID,
			&row.FirstName,
			&row.LastName,
			&signupDate,
			&row.Region,
		); err != nil {
			return nil, wrapError(err)
		}
		row.SaleDate = saleDate.Format(dateLayout)
		row.SignupDate = signupDate.Format(dateLayout)
		items = append(items, row)
	}
	return items, wrapError(rows.Err())
}
