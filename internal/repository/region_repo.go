package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hanz-sales/internal/domain"
)

// RegionRepository define el contrato de persistencia para regiones.
type RegionRepository interface {
	List(ctx context.Context) ([]domain.Region, error)
	Create(ctx context.Context, name string) (domain.Region, error)
	GetByID(ctx context.Context, id int) (domain.Region, error)
	Update(ctx context.Context, id int, name string) (domain.Region, error)
	Delete(ctx context.Context, id int) error
}

// PgRegionRepository implementa RegionRepository usando pgxpool.
type PgRegionRepository struct {
	pool *pgxpool.Pool
}

func NewPgRegionRepository(pool *pgxpool.Pool) *PgRegionRepository {
	return &PgRegionRepository{pool: pool}
}

func (r *PgRegionRepository) List(ctx context.Context) ([]domain.Region, error) {
	const query = `
		SELECT region_id, region_name
		FROM regions
		ORDER BY region_id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	items := []domain.Region{}
	for rows.Next() {
		var reg domain.Region
		if err := rows.Scan(&reg.RegionID, &reg.RegionName); err != nil {
			return nil, wrapError(err)
		}
		items = append(items, reg)
	}
	return items, wrapError(rows.Err())
}

func (r *PgRegionRepository) Create(ctx context.Context, name string) (domain.Region, error) {
	const query = `
		INSERT INTO regions (region_name)
		VALUES ($1)
		RETURNING region_id
	`
	reg := domain.Region{RegionName: name}
	err := r.pool.QueryRow(ctx, query, name).Scan(&reg.RegionID)
	if err != nil {
		return domain.Region{}, wrapError(err)
	}
	return reg, nil
}

func (r *PgRegionRepository) GetByID(ctx context.Context, id int) (domain.Region, error) {
	const query = `
		SELECT region_id, region_name
		FROM regions
		WHERE region_id = $1
	`
	var reg domain.Region
	err := r.pool.QueryRow(ctx, query, id).Scan(&reg.RegionID, &reg.RegionName)
	if err != nil {
		return domain.Region{}, wrapError(err)
	}
	return reg, nil
}

func (r *PgRegionRepository) Update(ctx context.Context, id int, name string) (domain.Region, error) {
	const query = `
		UPDATE regions
		SET region_name = $1
		WHERE region_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, name, id)
	if err != nil {
		return domain.Region{}, wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Region{}, domain.ErrNotFound
	}
	return domain.Region{RegionID: id, RegionName: name}, nil
}

func (r *PgRegionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM regions WHERE region_id = $1`, id)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
