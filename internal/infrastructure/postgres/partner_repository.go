package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implémentation du port PartnerRepository sur PostgreSQL.
type PartnerRepo struct {
	pool *pgxpool.Pool
}

func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepo {
	return &PartnerRepo{pool: pool}
}

const partnerSelect = `
	SELECT p.id, p.name, p.type, p.user_id, p.created_at, u.status AS user_status
	FROM partners p
	LEFT JOIN users u ON u.id = p.user_id`

// Create persiste un partenaire.
func (r *PartnerRepo) Create(ctx context.Context, p *entity.Partner) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO partners (id, name, type, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Type, p.UserID, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner : %w", err)
	}
	return nil
}

// GetByID retourne le partenaire avec le statut de son utilisateur, ou (nil, nil).
func (r *PartnerRepo) GetByID(ctx context.Context, id string) (*repository.PartnerWithUser, error) {
	var p repository.PartnerWithUser
	err := r.pool.QueryRow(ctx, partnerSelect+` WHERE p.id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Type, &p.UserID, &p.CreatedAt, &p.UserStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner : %w", err)
	}
	return &p, nil
}

// List retourne le roster complet, par nom.
func (r *PartnerRepo) List(ctx context.Context) ([]repository.PartnerWithUser, error) {
	rows, err := r.pool.Query(ctx, partnerSelect+` ORDER BY p.name`)
	if err != nil {
		return nil, fmt.Errorf("list partners : %w", err)
	}
	defer rows.Close()

	var list []repository.PartnerWithUser
	for rows.Next() {
		var p repository.PartnerWithUser
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.UserID, &p.CreatedAt, &p.UserStatus); err != nil {
			return nil, fmt.Errorf("scan partner : %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateUserStatus change le statut de l'utilisateur lié au partenaire.
func (r *PartnerRepo) UpdateUserStatus(ctx context.Context, partnerID, status string) error {
	query := `
		UPDATE users SET status = $2, updated_at = now()
		WHERE id = (SELECT user_id FROM partners WHERE id = $1)`
	tag, err := r.pool.Exec(ctx, query, partnerID, status)
	if err != nil {
		return fmt.Errorf("update partner user status : %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
