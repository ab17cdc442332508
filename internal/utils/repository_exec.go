package utils

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ExecType int

const (
	ExecInsert ExecType = iota
	ExecUpdate
	ExecDelete
)

// ErrNoRowsAffected is returned by ExecWithCheck when an update or delete
// matched nothing, which the repositories translate to their not-found error.
var ErrNoRowsAffected = fmt.Errorf("no rows affected")

func ExecWithCheck(ctx context.Context, db *sqlx.DB, query string, execType ExecType, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	// if Insert operation, don't need to check rows affected
	if execType == ExecInsert {
		return nil
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
