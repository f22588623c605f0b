package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	pgstore "github.com/zone117x/stx-supply-schedule/internal/storage/postgres"
)

// RunPostgresMigrations applies all embedded Postgres migration files in
// lexical order. Postgres supports multi-statement Exec, so each file is
// applied as a single batch.
func RunPostgresMigrations(ctx context.Context, pool *pgstore.Pool) error {
	entries, err := fs.ReadDir(PostgresFS, "postgres")
	if err != nil {
		return fmt.Errorf("read embedded postgres migrations: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		data, err := fs.ReadFile(PostgresFS, "postgres/"+file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}

	return nil
}
