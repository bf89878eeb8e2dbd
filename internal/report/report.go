package report

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/internal/queries"
	"github.com/openfga/seqops/pkg/logger"
)

// Run executes qs in order against ds and hands every result to r. It stops at the
// first failing query or when ctx is done. The returned ID tags the run's log
// entries.
func Run(ctx context.Context, log logger.Logger, r Renderer, ds *catalog.Dataset, qs []queries.Query) (ulid.ULID, error) {
	runID := ulid.Make()
	ctx = logger.ContextWithFields(ctx, zap.String("run_id", runID.String()))

	log.InfoWithContext(ctx, "running queries", zap.Int("queries", len(qs)))

	var section queries.Section
	for i, q := range qs {
		if err := ctx.Err(); err != nil {
			return runID, err
		}

		if i == 0 || q.Section != section {
			section = q.Section
			if err := r.Section(section); err != nil {
				return runID, fmt.Errorf("failed to render section %s: %w", section, err)
			}
		}

		start := time.Now()
		result, err := q.Run(ds)
		if err != nil {
			log.ErrorWithContext(ctx, "query failed", zap.String("query", q.Name()), zap.Error(err))
			return runID, fmt.Errorf("query %s: %w", q.Name(), err)
		}
		log.DebugWithContext(ctx, "query complete",
			zap.String("query", q.Name()),
			zap.Int("lines", len(result.Lines)),
			zap.Duration("took", time.Since(start)),
		)

		if err := r.Query(q, result); err != nil {
			return runID, fmt.Errorf("failed to render query %s: %w", q.Name(), err)
		}
	}

	if err := r.Flush(); err != nil {
		return runID, err
	}

	log.InfoWithContext(ctx, "queries complete")
	return runID, nil
}
