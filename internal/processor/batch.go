// Package processor runs batches of diff analyses over a bounded worker
// pool. The engine itself is pure and in-memory, so the pool exists for
// throughput on large batches, not for I/O overlap.
package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/analyzer"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/domain"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/logging"
	"github.com/SathishAdithiyaaSV/Repo-analyzer/internal/telemetry"
)

const defaultConcurrency = 10

// BatchProcessor processes multiple diffs in parallel using a worker pool.
type BatchProcessor struct {
	analyzer    *analyzer.Analyzer
	concurrency int
	logger      logging.Logger
	telemetry   *telemetry.Provider
}

// ProcessResult holds the outcome for a single batch item. Exactly one of
// Result and Err is set. Index is the item's position in the request so
// response order can be preserved.
type ProcessResult struct {
	Index    int
	FileName string
	Result   *domain.AnalysisResult
	Err      error
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(a *analyzer.Analyzer, concurrency int, logger logging.Logger, tp *telemetry.Provider) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		analyzer:    a,
		concurrency: concurrency,
		logger:      logger,
		telemetry:   tp,
	}
}

type batchJob struct {
	index int
	diff  *domain.DiffInput
}

// Process analyzes a batch of diffs. One element is returned per input, in
// input order. A failing item carries its error; it never aborts siblings.
func (b *BatchProcessor) Process(ctx context.Context, diffs []*domain.DiffInput) []*ProcessResult {
	if len(diffs) == 0 {
		return []*ProcessResult{}
	}

	b.logger.Debug("starting batch processing",
		logging.Int("batch_size", len(diffs)),
		logging.Int("concurrency", b.concurrency),
	)

	start := time.Now()

	jobs := make(chan batchJob, len(diffs))
	results := make([]*ProcessResult, len(diffs))

	var wg sync.WaitGroup
	workers := b.concurrency
	if workers > len(diffs) {
		workers = len(diffs)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go b.worker(ctx, jobs, results, &wg)
	}

	for i, diff := range diffs {
		jobs <- batchJob{index: i, diff: diff}
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	if b.telemetry != nil {
		b.telemetry.RecordBatch(len(diffs), failed)
	}

	b.logger.Info("batch processing complete",
		logging.Int("total", len(diffs)),
		logging.Int("failed", failed),
		logging.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return results
}

// worker consumes jobs until the channel closes, writing each outcome into
// its reserved result slot.
func (b *BatchProcessor) worker(ctx context.Context, jobs <-chan batchJob, results []*ProcessResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		results[job.index] = b.processItem(ctx, job)
	}
}

// processItem analyzes one diff, converting a panic into a per-item error so
// a single bad item cannot take down the batch.
func (b *BatchProcessor) processItem(ctx context.Context, job batchJob) (pr *ProcessResult) {
	pr = &ProcessResult{Index: job.index}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("analysis panicked",
				logging.Int("index", job.index),
				logging.String("file_name", pr.FileName),
				logging.Any("panic", r),
			)
			pr.Result = nil
			pr.Err = fmt.Errorf("analysis failed: %v", r)
		}
	}()

	pr.FileName = job.diff.FileName

	result, err := b.analyzer.Analyze(ctx, job.diff)
	if err != nil {
		pr.Err = err
		return pr
	}

	pr.Result = result
	return pr
}
