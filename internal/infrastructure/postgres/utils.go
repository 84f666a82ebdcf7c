package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// deref devuelve el valor del puntero o cadena vacía si es nil (columnas NULL).
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
