package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/repository"
)

func translateDBErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		// undefined_table
		if pge.Code == "42P01" {
			return repository.ErrSchemaMissing
		}
	}

	return err
}
