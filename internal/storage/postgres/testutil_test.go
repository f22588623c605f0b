package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL container for testing and applies the
// embedded ledger schema. Returns a cleanup function that must be called
// after tests complete.
func setupTestDB(t *testing.T) (*Pool, func()) {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	pool, err := NewPool(ctx, dsn)
	require.NoError(t, err, "failed to create pool")

	applyLedgerSchema(t, ctx, pool)

	cleanup := func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

// applyLedgerSchema creates the accounts and accounts_vesting tables.
// The DDL is inlined rather than imported from the migrations package to
// avoid an import cycle (migrations imports this package for the pool).
func applyLedgerSchema(t *testing.T, ctx context.Context, pool *Pool) {
	t.Helper()

	ddl := `
		CREATE TABLE IF NOT EXISTS accounts (
			address TEXT NOT NULL,
			credit_value BIGINT NOT NULL DEFAULT 0,
			debit_value BIGINT NOT NULL DEFAULT 0,
			lock_transfer_block_id BIGINT NOT NULL DEFAULT 0,
			block_id BIGINT NOT NULL,
			vtxindex INT NOT NULL DEFAULT 0,
			PRIMARY KEY (address, block_id, vtxindex)
		);
		CREATE TABLE IF NOT EXISTS accounts_vesting (
			address TEXT NOT NULL,
			vesting_value BIGINT NOT NULL,
			block_id BIGINT NOT NULL,
			PRIMARY KEY (address, block_id)
		);
	`
	_, err := pool.Exec(ctx, ddl)
	require.NoError(t, err, "failed to apply ledger schema")
}

// insertAccountRow adds one accounts row.
func insertAccountRow(t *testing.T, ctx context.Context, pool *Pool,
	address string, credit, debit, lockHeight, blockHeight int64, vtxindex int,
) {
	t.Helper()

	_, err := pool.Exec(ctx, `
		INSERT INTO accounts (address, credit_value, debit_value, lock_transfer_block_id, block_id, vtxindex)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, address, credit, debit, lockHeight, blockHeight, vtxindex)
	require.NoError(t, err, "failed to insert account row")
}

// insertVestingRow adds one accounts_vesting row.
func insertVestingRow(t *testing.T, ctx context.Context, pool *Pool,
	address string, amount, blockHeight int64,
) {
	t.Helper()

	_, err := pool.Exec(ctx, `
		INSERT INTO accounts_vesting (address, vesting_value, block_id)
		VALUES ($1, $2, $3)
	`, address, amount, blockHeight)
	require.NoError(t, err, "failed to insert vesting row")
}
