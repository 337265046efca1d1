package repository

import (
	"database/sql"
	"errors"

	"career-match/internal/domain/matching"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

func isNoRows(err error) bool {
	return err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

func parseCategory(s string) matching.Category {
	if c, ok := matching.ParseCategory(s); ok {
		return c
	}
	return matching.CategoryTechnical
}
