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

var _ repository.WorkRepository = (*WorkRepo)(nil)

// WorkRepo implémentation du port WorkRepository sur PostgreSQL.
type WorkRepo struct {
	pool *pgxpool.Pool
}

func NewWorkRepository(pool *pgxpool.Pool) *WorkRepo {
	return &WorkRepo{pool: pool}
}

const workSelect = `
	SELECT w.id, w.title, w.isbn, w.price, w.discipline_id, w.author_id, w.concepteur_id,
	       w.stock, w.status, w.created_at, w.updated_at,
	       d.name AS discipline_name, a.name AS author_name, c.name AS concepteur_name
	FROM works w
	JOIN disciplines d ON d.id = w.discipline_id
	LEFT JOIN users a ON a.id = w.author_id
	LEFT JOIN users c ON c.id = w.concepteur_id`

func scanWork(row pgx.Row) (*repository.WorkWithRelations, error) {
	var w repository.WorkWithRelations
	err := row.Scan(
		&w.ID, &w.Title, &w.ISBN, &w.Price, &w.DisciplineID, &w.AuthorID, &w.ConcepteurID,
		&w.Stock, &w.Status, &w.CreatedAt, &w.UpdatedAt,
		&w.DisciplineName, &w.AuthorName, &w.ConcepteurName,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste une œuvre.
func (r *WorkRepo) Create(ctx context.Context, work *entity.Work) error {
	query := `
		INSERT INTO works (id, title, isbn, price, discipline_id, author_id, concepteur_id, stock, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		work.ID, work.Title, work.ISBN, work.Price, work.DisciplineID, work.AuthorID, work.ConcepteurID,
		work.Stock, work.Status, work.CreatedAt, work.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrISBNAlreadyExists
		}
		return fmt.Errorf("insert work : %w", err)
	}
	return nil
}

// Update met à jour les champs modifiables d'une œuvre.
func (r *WorkRepo) Update(ctx context.Context, work *entity.Work) error {
	query := `
		UPDATE works SET title = $2, price = $3, stock = $4, status = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		work.ID, work.Title, work.Price, work.Stock, work.Status, work.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work : %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID retourne l'œuvre avec ses relations, ou (nil, nil).
func (r *WorkRepo) GetByID(ctx context.Context, id string) (*repository.WorkWithRelations, error) {
	w, err := scanWork(r.pool.QueryRow(ctx, workSelect+` WHERE w.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work : %w", err)
	}
	return w, nil
}

// List liste le catalogue, optionnellement filtré par discipline.
func (r *WorkRepo) List(ctx context.Context, disciplineID string) ([]repository.WorkWithRelations, error) {
	query := workSelect + ` WHERE ($1 = '' OR w.discipline_id = $1) ORDER BY w.created_at DESC`
	rows, err := r.pool.Query(ctx, query, disciplineID)
	if err != nil {
		return nil, fmt.Errorf("list works : %w", err)
	}
	defer rows.Close()

	var list []repository.WorkWithRelations
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work : %w", err)
		}
		list = append(list, *w)
	}
	return list, rows.Err()
}

// AdjustStock applique un delta de stock. Échoue si le résultat serait négatif.
func (r *WorkRepo) AdjustStock(ctx context.Context, id string, delta int) error {
	query := `UPDATE works SET stock = stock + $2, updated_at = now() WHERE id = $1 AND stock + $2 >= 0`
	tag, err := r.pool.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock : %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
