package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
)

const (
	initialRetryDelay = 200 * time.Millisecond
	maxRetryDelay     = 5 * time.Second
)

// BatchExtractor reads up to batchSize calculation requests from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer evaluates a raw request into a serialized calculation record.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error)
}

// BatchLoader writes calculation records to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Pipeline runs the extract-evaluate-load loop over calculation requests.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	connected   atomic.Bool
	batchSize   int
	retry       *backoff.ExponentialBackOff
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = initialRetryDelay
	retry.MaxInterval = maxRetryDelay
	retry.Multiplier = 2
	retry.RandomizationFactor = 0
	retry.MaxElapsedTime = 0 // retry until the context ends

	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
		retry:       retry,
	}
}

// CheckReadiness reports whether the last extract from the source succeeded.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.connected.Load() {
		return errors.New("pipeline is not connected to the request source")
	}
	return nil
}

// Run executes the batch loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer func() {
		p.metrics.PipelineRunning.Set(0)
		p.connected.Store(false)
	}()

	p.retry.Reset()
	for ctx.Err() == nil {
		if !p.processBatch(ctx) {
			break
		}
	}
	p.logger.Info("pipeline stopping", "reason", ctx.Err())
	return nil
}

// processBatch runs one cycle. It returns false when the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context) bool {
	start := time.Now()

	rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.connected.Store(false)
		p.logger.Error("extract batch failed", "error", err)
		return p.wait(ctx)
	}
	p.connected.Store(true)

	if len(rawBatch) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.MessagesConsumed.Add(float64(len(rawBatch)))
	p.metrics.BatchSize.Observe(float64(len(rawBatch)))
	p.retry.Reset()

	loaded, ok := p.transformAndLoad(ctx, rawBatch)
	if loaded > 0 {
		p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	}
	return ok
}

// transformAndLoad evaluates every request, loads the records and commits
// offsets. Requests that can never succeed are dropped so a bad message cannot
// stall its partition. Nothing in the batch is committed until the load
// succeeds, and offsets are committed in batch order.
func (p *Pipeline) transformAndLoad(ctx context.Context, rawBatch []domain.RawEvent) (int, bool) {
	outBatch := make([]domain.OutputEvent, 0, len(rawBatch))

	for _, raw := range rawBatch {
		out, err := p.transform(ctx, raw)
		if err != nil {
			if ctx.Err() != nil {
				return 0, false
			}
			p.logger.Warn("calculation failed, skipping request",
				"error", err,
				"key", string(raw.Key),
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			continue
		}
		outBatch = append(outBatch, out)
	}

	if len(outBatch) > 0 {
		for {
			err := p.loader.LoadBatch(ctx, outBatch)
			if err == nil {
				break
			}
			p.logger.Error("load batch failed", "error", err, "batch_size", len(outBatch))
			if !p.wait(ctx) {
				return 0, false
			}
		}
		p.metrics.MessagesProduced.Add(float64(len(outBatch)))
	}

	for _, raw := range rawBatch {
		p.commit(ctx, raw)
	}
	return len(outBatch), true
}

// transform evaluates one request, retrying transient failures such as a
// weather outage until they clear or ctx ends.
func (p *Pipeline) transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	for {
		out, err := p.transformer.Transform(ctx, raw)
		if err == nil || !domain.Transient(err) {
			return out, err
		}
		p.logger.Warn("calculation failed, retrying request",
			"error", err,
			"key", string(raw.Key),
			"partition", raw.Partition,
			"offset", raw.Offset,
		)
		if !p.wait(ctx) {
			return domain.OutputEvent{}, ctx.Err()
		}
	}
}

// wait sleeps for the next retry delay. It returns false if ctx ends first.
func (p *Pipeline) wait(ctx context.Context) bool {
	d := p.retry.NextBackOff()
	if d == backoff.Stop {
		d = maxRetryDelay
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (p *Pipeline) commit(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}
