package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

var _ repository.RoyaltyRepository = (*RoyaltyRepo)(nil)

// RoyaltyRepo implémentation du port RoyaltyRepository sur PostgreSQL.
type RoyaltyRepo struct {
	pool *pgxpool.Pool
}

func NewRoyaltyRepository(pool *pgxpool.Pool) *RoyaltyRepo {
	return &RoyaltyRepo{pool: pool}
}

// CreateBatch insère les droits calculés dans la même transaction.
func (r *RoyaltyRepo) CreateBatch(ctx context.Context, royalties []*entity.Royalty) error {
	if len(royalties) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, roy := range royalties {
		batch.Queue(`
			INSERT INTO royalties (id, work_id, user_id, amount, paid, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			roy.ID, roy.WorkID, roy.UserID, roy.Amount, roy.Paid, roy.CreatedAt,
		)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert royalties : %w", err)
	}
	return nil
}

// List liste les droits d'une période, createdAt décroissant.
func (r *RoyaltyRepo) List(ctx context.Context, start, end *time.Time, onlyUnpaid bool) ([]entity.Royalty, error) {
	query := `
		SELECT id, work_id, user_id, amount, paid, created_at
		FROM royalties WHERE 1=1`
	args := []any{}
	var clause string
	clause, args = rangeClause("created_at", start, end, args)
	query += clause
	if onlyUnpaid {
		query += ` AND paid = false`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list royalties : %w", err)
	}
	defer rows.Close()

	var list []entity.Royalty
	for rows.Next() {
		var roy entity.Royalty
		if err := rows.Scan(&roy.ID, &roy.WorkID, &roy.UserID, &roy.Amount, &roy.Paid, &roy.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan royalty : %w", err)
		}
		list = append(list, roy)
	}
	return list, rows.Err()
}

// MarkPaid passe les droits indiqués à l'état payé. Idempotent.
func (r *RoyaltyRepo) MarkPaid(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `UPDATE royalties SET paid = true WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("mark royalties paid : %w", err)
	}
	return nil
}

// DeliveredRevenueByWork CA livré par œuvre sur la période : somme
// prix × quantité des lignes de commandes DELIVERED.
func (r *RoyaltyRepo) DeliveredRevenueByWork(ctx context.Context, start, end *time.Time) ([]repository.WorkRevenue, error) {
	query := `
		SELECT w.id, w.author_id, w.concepteur_id, COALESCE(SUM(oi.price * oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id AND o.status = 'DELIVERED'
		JOIN works w ON w.id = oi.work_id
		WHERE 1=1`
	args := []any{}
	var clause string
	clause, args = rangeClause("o.created_at", start, end, args)
	query += clause + ` GROUP BY w.id, w.author_id, w.concepteur_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("delivered revenue by work : %w", err)
	}
	defer rows.Close()

	var list []repository.WorkRevenue
	for rows.Next() {
		var rev repository.WorkRevenue
		if err := rows.Scan(&rev.WorkID, &rev.AuthorID, &rev.ConcepteurID, &rev.Revenue); err != nil {
			return nil, fmt.Errorf("scan work revenue : %w", err)
		}
		list = append(list, rev)
	}
	return list, rows.Err()
}
