package seeder

import (
	"context"
	"errors"
	"fmt"

	"talent-match/internal/database"
)

var errSchemaMismatch = errors.New("schema mismatch")

// requireColumns fails with every missing column listed when the table in
// the public schema lacks any of the given columns.
func requireColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	existing := make(map[string]bool, len(columns))
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []error
	for _, col := range columns {
		if !existing[col] {
			missing = append(missing, fmt.Errorf("missing column %s.%s", table, col))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %w", errSchemaMismatch, errors.Join(missing...))
	}
	return nil
}
