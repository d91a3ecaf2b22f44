// Package pgerr classifies PostgreSQL errors surfaced through GORM and pgx.
package pgerr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation checks if err is a unique_violation whose constraint
// name contains constraintName (case-insensitive). An empty name matches any.
func IsUniqueViolation(err error, constraintName string) bool {
	return matches(err, codeUniqueViolation, constraintName)
}

// IsForeignKeyViolation checks if err is a foreign_key_violation whose
// constraint name contains constraintName (case-insensitive).
func IsForeignKeyViolation(err error, constraintName string) bool {
	return matches(err, codeForeignKeyViolation, constraintName)
}

func matches(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
}
