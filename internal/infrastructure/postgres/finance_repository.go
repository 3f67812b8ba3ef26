package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo consultations en lecture seule qui alimentent les rapports
// financiers. Les agrégations fines restent dans le use case ; ici on ne fait
// que ramener les lignes avec leurs relations aplaties.
type FinanceRepo struct {
	pool *pgxpool.Pool
}

func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepo {
	return &FinanceRepo{pool: pool}
}

// SalesInRange ventes directes de la période avec œuvre, discipline et auteur.
func (r *FinanceRepo) SalesInRange(ctx context.Context, start, end *time.Time) ([]repository.SaleRow, error) {
	query := `
		SELECT s.id, s.work_id, w.title, d.name, a.name, s.quantity, s.amount, s.created_at
		FROM sales s
		JOIN works w ON w.id = s.work_id
		LEFT JOIN disciplines d ON d.id = w.discipline_id
		LEFT JOIN users a ON a.id = w.author_id
		WHERE 1=1`
	args := []any{}
	var clause string
	clause, args = rangeClause("s.created_at", start, end, args)
	query += clause + ` ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales in range : %w", err)
	}
	defer rows.Close()

	var list []repository.SaleRow
	for rows.Next() {
		var s repository.SaleRow
		if err := rows.Scan(&s.ID, &s.WorkID, &s.WorkTitle, &s.DisciplineName, &s.AuthorName,
			&s.Quantity, &s.Amount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale row : %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// OrdersInRange commandes de la période, tous statuts, avec lignes et
// relations, createdAt décroissant.
func (r *FinanceRepo) OrdersInRange(ctx context.Context, start, end *time.Time) ([]repository.OrderRow, error) {
	return r.ordersWhere(ctx, "", start, end)
}

// PartnerOrdersInRange commandes rattachées à un partenaire, tous statuts.
func (r *FinanceRepo) PartnerOrdersInRange(ctx context.Context, start, end *time.Time) ([]repository.OrderRow, error) {
	return r.ordersWhere(ctx, " AND o.partner_id IS NOT NULL", start, end)
}

func (r *FinanceRepo) ordersWhere(ctx context.Context, extra string, start, end *time.Time) ([]repository.OrderRow, error) {
	query := `
		SELECT o.id, o.status, COALESCE(o.total, 0), o.payment_reference,
		       u.name, o.partner_id, p.name, pu.status, o.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		LEFT JOIN partners p ON p.id = o.partner_id
		LEFT JOIN users pu ON pu.id = p.user_id
		WHERE 1=1` + extra
	args := []any{}
	var clause string
	clause, args = rangeClause("o.created_at", start, end, args)
	query += clause + ` ORDER BY o.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("orders in range : %w", err)
	}
	defer rows.Close()

	var list []repository.OrderRow
	var ids []string
	for rows.Next() {
		var o repository.OrderRow
		if err := rows.Scan(&o.ID, &o.Status, &o.Total, &o.PaymentReference,
			&o.UserName, &o.PartnerID, &o.PartnerName, &o.PartnerUserStatus, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order row : %w", err)
		}
		list = append(list, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.orderItemRows(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Items = items[list[i].ID]
	}
	return list, nil
}

// orderItemRows lignes enrichies d'un lot de commandes, groupées par commande.
func (r *FinanceRepo) orderItemRows(ctx context.Context, orderIDs []string) (map[string][]repository.OrderItemRow, error) {
	out := make(map[string][]repository.OrderItemRow, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT oi.order_id, oi.id, oi.work_id, w.title, d.name, a.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN works w ON w.id = oi.work_id
		LEFT JOIN disciplines d ON d.id = w.discipline_id
		LEFT JOIN users a ON a.id = w.author_id
		WHERE oi.order_id = ANY($1)`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("order item rows : %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var it repository.OrderItemRow
		if err := rows.Scan(&orderID, &it.ID, &it.WorkID, &it.WorkTitle, &it.DisciplineName,
			&it.AuthorName, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item row : %w", err)
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

// RoyaltiesInRange droits de la période avec relations aplaties,
// createdAt décroissant.
func (r *FinanceRepo) RoyaltiesInRange(ctx context.Context, start, end *time.Time) ([]repository.RoyaltyRow, error) {
	query := `
		SELECT roy.id, roy.work_id, w.title, d.name, a.name, c.name,
		       roy.user_id, u.name, roy.amount, roy.paid, roy.created_at
		FROM royalties roy
		JOIN works w ON w.id = roy.work_id
		LEFT JOIN disciplines d ON d.id = w.discipline_id
		LEFT JOIN users a ON a.id = w.author_id
		LEFT JOIN users c ON c.id = w.concepteur_id
		LEFT JOIN users u ON u.id = roy.user_id
		WHERE 1=1`
	args := []any{}
	var clause string
	clause, args = rangeClause("roy.created_at", start, end, args)
	query += clause + ` ORDER BY roy.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("royalties in range : %w", err)
	}
	defer rows.Close()

	var list []repository.RoyaltyRow
	for rows.Next() {
		var roy repository.RoyaltyRow
		if err := rows.Scan(&roy.ID, &roy.WorkID, &roy.WorkTitle, &roy.DisciplineName, &roy.AuthorName,
			&roy.ConcepteurName, &roy.UserID, &roy.UserName, &roy.Amount, &roy.Paid, &roy.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan royalty row : %w", err)
		}
		list = append(list, roy)
	}
	return list, rows.Err()
}

// Partners roster complet, par nom, avec le statut de l'utilisateur lié.
func (r *FinanceRepo) Partners(ctx context.Context) ([]repository.PartnerRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.type, u.status
		FROM partners p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.name`)
	if err != nil {
		return nil, fmt.Errorf("partners : %w", err)
	}
	defer rows.Close()

	var list []repository.PartnerRow
	for rows.Next() {
		var p repository.PartnerRow
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.UserStatus); err != nil {
			return nil, fmt.Errorf("scan partner row : %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountWorks taille du catalogue.
func (r *FinanceRepo) CountWorks(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM works`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count works : %w", err)
	}
	return n, nil
}

// CountUsersByRole nombre d'utilisateurs d'un rôle.
func (r *FinanceRepo) CountUsersByRole(ctx context.Context, role string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users by role : %w", err)
	}
	return n, nil
}

// SumSalesAmount somme des ventes directes entre deux bornes.
func (r *FinanceRepo) SumSalesAmount(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM sales
		WHERE created_at >= $1 AND created_at <= $2`, start, end).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales amount : %w", err)
	}
	return sum, nil
}

// CountOrdersBetween nombre de commandes créées entre deux bornes.
func (r *FinanceRepo) CountOrdersBetween(ctx context.Context, start, end time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders
		WHERE created_at >= $1 AND created_at <= $2`, start, end).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders between : %w", err)
	}
	return n, nil
}
