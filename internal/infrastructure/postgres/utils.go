package postgres

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation vérifie si l'erreur est une violation de contrainte
// d'unicité (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// rangeClause ajoute les bornes optionnelles sur une colonne datetime à une
// requête. args est agrandi en place ; retourne la clause (vide si aucune
// borne) et les args complétés.
func rangeClause(column string, start, end *time.Time, args []any) (string, []any) {
	var sb strings.Builder
	if start != nil {
		args = append(args, *start)
		sb.WriteString(" AND " + column + " >= $" + strconv.Itoa(len(args)))
	}
	if end != nil {
		args = append(args, *end)
		sb.WriteString(" AND " + column + " <= $" + strconv.Itoa(len(args)))
	}
	return sb.String(), args
}
