package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
)

// DecisionPublisher forwards irrigation decisions to field controllers.
type DecisionPublisher interface {
	Publish(ctx context.Context, c domain.Calculation) error
}

// CalculationTransformer implements Transformer by parsing a calculation
// request, evaluating it and serializing the resulting record.
type CalculationTransformer struct {
	weather   domain.WeatherProvider
	decisions DecisionPublisher
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewTransformer creates a CalculationTransformer. A nil weather provider
// rejects realtime requests; a nil publisher disables decision fan-out.
func NewTransformer(weather domain.WeatherProvider, decisions DecisionPublisher, metrics *observability.Metrics, logger *slog.Logger) *CalculationTransformer {
	return &CalculationTransformer{
		weather:   weather,
		decisions: decisions,
		metrics:   metrics,
		logger:    logger,
	}
}

func (t *CalculationTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	req, err := domain.ParseCalculationRequest(raw)
	if err != nil {
		t.metrics.Calculations.WithLabelValues("unknown", domain.Outcome(err)).Inc()
		return domain.OutputEvent{}, err
	}

	calc, err := domain.Evaluate(ctx, req, t.weather)
	t.metrics.Calculations.WithLabelValues(string(req.Type), domain.Outcome(err)).Inc()
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("evaluate request %q: %w", req.RequestID, err)
	}
	t.metrics.PETValues.Observe(calc.PETValue)

	if t.decisions != nil {
		// A lost decision does not invalidate the calculation record.
		if err := t.decisions.Publish(ctx, calc); err != nil {
			t.logger.Warn("publish decision failed", "calculation_id", calc.ID, "error", err)
		}
	}

	return domain.SerializeCalculation(calc)
}
