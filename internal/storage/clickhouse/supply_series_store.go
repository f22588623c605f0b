package clickhouse

import (
	"context"
	"fmt"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
	"github.com/zone117x/stx-supply-schedule/internal/storage"
)

// SupplySeriesStore implements storage.SupplySeriesStore using ClickHouse.
// One computed series per run; rows are keyed by block height in a
// ReplacingMergeTree so re-running against the same ledger converges to the
// same table contents.
type SupplySeriesStore struct {
	conn *Conn
}

// NewSupplySeriesStore creates a new SupplySeriesStore.
func NewSupplySeriesStore(conn *Conn) *SupplySeriesStore {
	return &SupplySeriesStore{conn: conn}
}

// Compile-time interface check.
var _ storage.SupplySeriesStore = (*SupplySeriesStore)(nil)

// InsertBulk adds all entries of one computed series.
func (s *SupplySeriesStore) InsertBulk(ctx context.Context, series []domain.BlockTotal) error {
	if len(series) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO supply_series (
			block_height, queried_micro_stx, vested_micro_stx, total_micro_stx, estimated_time
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, entry := range series {
		err = batch.Append(
			entry.BlockHeight,
			entry.QueriedMicro,
			entry.VestedMicro,
			entry.TotalMicro,
			entry.EstimatedTime,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}
