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

var _ repository.DisciplineRepository = (*DisciplineRepo)(nil)

// DisciplineRepo implémentation du port DisciplineRepository sur PostgreSQL.
type DisciplineRepo struct {
	pool *pgxpool.Pool
}

func NewDisciplineRepository(pool *pgxpool.Pool) *DisciplineRepo {
	return &DisciplineRepo{pool: pool}
}

func (r *DisciplineRepo) Create(ctx context.Context, d *entity.Discipline) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO disciplines (id, name) VALUES ($1, $2)`, d.ID, d.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert discipline : %w", err)
	}
	return nil
}

func (r *DisciplineRepo) GetByID(ctx context.Context, id string) (*entity.Discipline, error) {
	var d entity.Discipline
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM disciplines WHERE id = $1`, id).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discipline : %w", err)
	}
	return &d, nil
}

func (r *DisciplineRepo) List(ctx context.Context) ([]entity.Discipline, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM disciplines ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list disciplines : %w", err)
	}
	defer rows.Close()

	var list []entity.Discipline
	for rows.Next() {
		var d entity.Discipline
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan discipline : %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
