// Package pipeline wires the ledger reader, supply accumulator, invariant
// validator and report writer into one sequential run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/zone117x/stx-supply-schedule/internal/domain"
	"github.com/zone117x/stx-supply-schedule/internal/reporting"
	"github.com/zone117x/stx-supply-schedule/internal/schedule"
	"github.com/zone117x/stx-supply-schedule/internal/stacks"
	"github.com/zone117x/stx-supply-schedule/internal/storage"
	"github.com/zone117x/stx-supply-schedule/internal/verification"
)

// Output file names, relative to the output directory.
const (
	SupplyFile              = "supply.csv"
	PlaceholderAccountsFile = "placeholder_accounts.csv"
	PlaceholderTotalsFile   = "placeholder_totals.csv"
)

// Pipeline runs the full schedule reconstruction:
// Reader -> Accumulator -> Validator -> Writer, strictly sequential.
type Pipeline struct {
	ledger            storage.LedgerStore
	seriesSink        storage.SupplySeriesStore // optional
	outputDir         string
	logger            *zap.Logger
	placeholderReport bool
	clock             func() time.Time
}

// New creates a pipeline writing artifacts into outputDir.
func New(ledger storage.LedgerStore, outputDir string, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		ledger:    ledger,
		outputDir: outputDir,
		logger:    logger,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// WithSeriesSink also persists the pruned series to the given store.
func (p *Pipeline) WithSeriesSink(sink storage.SupplySeriesStore) *Pipeline {
	p.seriesSink = sink
	return p
}

// WithPlaceholderReport additionally emits the placeholder-account artifacts.
func (p *Pipeline) WithPlaceholderReport() *Pipeline {
	p.placeholderReport = true
	return p
}

// WithClock sets a custom clock function for deterministic output.
func (p *Pipeline) WithClock(clock func() time.Time) *Pipeline {
	p.clock = clock
	return p
}

// Run executes the full pipeline and writes output files:
// - supply.csv (pruned series)
// - placeholder_accounts.csv, placeholder_totals.csv (placeholder report mode)
// Any invariant violation or store failure aborts the run; artifacts are
// written atomically so a failed run leaves nothing partial behind.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// The seed height for the invariant check. The accumulator re-reads it;
	// the ledger is a static snapshot, so both reads agree.
	startHeight, err := p.ledger.LatestBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("latest block height: %w", err)
	}
	p.logger.Info("starting supply schedule run", zap.Uint64("start_height", startHeight))

	series, err := schedule.NewAccumulator(p.ledger).WithClock(p.clock).Run(ctx)
	if err != nil {
		return fmt.Errorf("accumulate supply series: %w", err)
	}

	if err := verification.CheckSeries(series, startHeight); err != nil {
		return fmt.Errorf("validate supply series: %w", err)
	}

	pruned := schedule.Prune(series)
	if err := verification.CheckPruned(pruned); err != nil {
		return fmt.Errorf("validate pruned series: %w", err)
	}
	p.logger.Info("computed supply series",
		zap.Int("blocks", len(series)),
		zap.Int("pruned_rows", len(pruned)),
		zap.Uint64("final_total_micro_stx", pruned[len(pruned)-1].TotalMicro),
	)

	supplyPath := filepath.Join(p.outputDir, SupplyFile)
	if err := reporting.WriteFileAtomic(supplyPath, []byte(reporting.RenderSupplyCSV(pruned))); err != nil {
		return fmt.Errorf("write %s: %w", SupplyFile, err)
	}
	p.logger.Info("wrote supply report", zap.String("path", supplyPath))

	if p.placeholderReport {
		if err := p.writePlaceholderReports(ctx); err != nil {
			return err
		}
	}

	if p.seriesSink != nil {
		if err := p.seriesSink.InsertBulk(ctx, pruned); err != nil {
			return fmt.Errorf("persist supply series: %w", err)
		}
		p.logger.Info("persisted supply series", zap.Int("rows", len(pruned)))
	}

	return nil
}

// writePlaceholderReports emits the raw and per-address-aggregated artifacts
// for ledger entries whose address fails destination-format validation.
func (p *Pipeline) writePlaceholderReports(ctx context.Context) error {
	rows, err := p.ledger.PlaceholderRows(ctx)
	if err != nil {
		return fmt.Errorf("placeholder rows: %w", err)
	}

	var placeholders []domain.PlaceholderAccount
	for _, row := range rows {
		if !stacks.IsCanonicalAddress(row.Address) {
			placeholders = append(placeholders, row)
		}
	}
	p.logger.Info("identified placeholder accounts",
		zap.Int("scanned", len(rows)),
		zap.Int("placeholders", len(placeholders)),
	)

	accountsPath := filepath.Join(p.outputDir, PlaceholderAccountsFile)
	if err := reporting.WriteFileAtomic(accountsPath, []byte(reporting.RenderPlaceholderAccountsCSV(placeholders))); err != nil {
		return fmt.Errorf("write %s: %w", PlaceholderAccountsFile, err)
	}

	totalsPath := filepath.Join(p.outputDir, PlaceholderTotalsFile)
	if err := reporting.WriteFileAtomic(totalsPath, []byte(reporting.RenderPlaceholderTotalsCSV(placeholders))); err != nil {
		return fmt.Errorf("write %s: %w", PlaceholderTotalsFile, err)
	}

	return nil
}
