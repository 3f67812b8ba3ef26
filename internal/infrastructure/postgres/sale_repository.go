package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implémentation du port SaleRepository sur PostgreSQL.
type SaleRepo struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// Create persiste une vente directe.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sales (id, work_id, quantity, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		sale.ID, sale.WorkID, sale.Quantity, sale.Amount, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale : %w", err)
	}
	return nil
}

// List liste les ventes d'une période, createdAt décroissant.
func (r *SaleRepo) List(ctx context.Context, start, end *time.Time) ([]entity.Sale, error) {
	query := `
		SELECT id, work_id, quantity, amount, created_at
		FROM sales WHERE 1=1`
	args := []any{}
	var clause string
	clause, args = rangeClause("created_at", start, end, args)
	query += clause + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales : %w", err)
	}
	defer rows.Close()

	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.WorkID, &s.Quantity, &s.Amount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale : %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
