package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implémentation du port OrderRepository sur PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste la commande et ses lignes dans la même transaction.
// Un total à zéro est stocké NULL (montant dérivé des lignes à la lecture).
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin : %w", err)
	}
	defer tx.Rollback(ctx)

	var total *decimal.Decimal
	if order.Total.IsPositive() {
		total = &order.Total
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, partner_id, status, total, payment_reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.UserID, order.PartnerID, order.Status, total, order.PaymentReference, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order : %w", err)
	}

	for _, it := range order.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, work_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`,
			it.ID, order.ID, it.WorkID, it.Quantity, it.Price,
		)
		if err != nil {
			return fmt.Errorf("insert order item : %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID retourne la commande avec ses lignes, ou (nil, nil).
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, partner_id, status, COALESCE(total, 0), payment_reference, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.PartnerID, &o.Status, &o.Total, &o.PaymentReference, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order : %w", err)
	}

	items, err := r.itemsFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	o.Items = items[id]
	return &o, nil
}

// List liste les commandes selon le filtre, createdAt décroissant.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]entity.Order, error) {
	query := `
		SELECT id, user_id, partner_id, status, COALESCE(total, 0), payment_reference, created_at
		FROM orders WHERE 1=1`
	args := []any{}

	if f.UserID != "" {
		args = append(args, f.UserID)
		query += ` AND user_id = $` + strconv.Itoa(len(args))
	}
	if f.PartnerID != "" {
		args = append(args, f.PartnerID)
		query += ` AND partner_id = $` + strconv.Itoa(len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	var clause string
	clause, args = rangeClause("created_at", f.Start, f.End, args)
	query += clause

	query += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders : %w", err)
	}
	defer rows.Close()

	var list []entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.PartnerID, &o.Status, &o.Total, &o.PaymentReference, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order : %w", err)
		}
		list = append(list, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Items = items[list[i].ID]
	}
	return list, nil
}

// UpdateStatus change le statut d'une commande.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status : %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// itemsFor charge les lignes d'un lot de commandes, groupées par commande.
func (r *OrderRepo) itemsFor(ctx context.Context, orderIDs []string) (map[string][]entity.OrderItem, error) {
	out := make(map[string][]entity.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, work_id, quantity, price
		FROM order_items WHERE order_id = ANY($1)`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items : %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.WorkID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item : %w", err)
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}
