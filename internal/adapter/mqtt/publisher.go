package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/couchcryptid/pet-irrigation-service/internal/config"
	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
	paho "github.com/eclipse/paho.mqtt.golang"
)

// DecisionQoS is at-least-once; field controllers dedupe on calculation_id.
const DecisionQoS byte = 1

const (
	connectTimeout  = 5 * time.Second
	connectAttempts = 5
	disconnectQuiet = 250 // ms
)

// client is the subset of paho.Client the publisher needs.
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
}

// DecisionEvent is the payload sent to field controllers for every
// irrigation calculation.
type DecisionEvent struct {
	CalculationID             string    `json:"calculation_id"`
	Region                    string    `json:"region"`
	Crop                      string    `json:"crop"`
	GrowthStage               string    `json:"growth_stage"`
	ETc                       *float64  `json:"etc,omitempty"`
	IrrigationRequired        bool      `json:"irrigation_required"`
	RecommendedIrrigationRate *float64  `json:"recommended_irrigation_rate,omitempty"`
	DaysToNextIrrigation      *float64  `json:"days_to_next_irrigation,omitempty"`
	Timestamp                 time.Time `json:"timestamp"`
}

// NewDecisionEvent builds the decision payload for c. It reports false for
// calculations that carry no irrigation decision.
func NewDecisionEvent(c domain.Calculation) (DecisionEvent, bool) {
	if c.Type != domain.CalculationIrrigation || c.Status == "" {
		return DecisionEvent{}, false
	}
	ev := DecisionEvent{
		CalculationID:             c.ID,
		Region:                    c.RegionName,
		Crop:                      c.CropName,
		ETc:                       c.ETc,
		IrrigationRequired:        c.Status == domain.StatusIrrigationRequired,
		RecommendedIrrigationRate: c.RecommendedIrrigationRate,
		DaysToNextIrrigation:      c.DaysToNextIrrigation,
		Timestamp:                 c.CreatedAt,
	}
	if c.GrowthStage != nil {
		ev.GrowthStage = c.GrowthStage.String()
	}
	return ev, true
}

var segmentReplacer = strings.NewReplacer(
	" ", "-",
	"/", "-",
	"+", "",
	"#", "",
	",", "",
	"(", "",
	")", "",
)

// sanitizeSegment turns a region or crop name into a single MQTT topic level.
// Wildcards and level separators are never emitted.
func sanitizeSegment(s string) string {
	s = segmentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
	if s == "" {
		return "unknown"
	}
	return s
}

// RenderTopic fills {region} and {crop} in tmpl.
func RenderTopic(tmpl, region, crop string) string {
	return strings.NewReplacer(
		"{region}", sanitizeSegment(region),
		"{crop}", sanitizeSegment(crop),
	).Replace(tmpl)
}

// Publisher sends irrigation decisions to an MQTT broker.
type Publisher struct {
	client    client
	topicTmpl string
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewPublisher wraps an already connected client.
func NewPublisher(c client, topicTmpl string, metrics *observability.Metrics, logger *slog.Logger) *Publisher {
	return &Publisher{client: c, topicTmpl: topicTmpl, metrics: metrics, logger: logger}
}

// Connect dials the configured broker, retrying with exponential backoff,
// and returns a Publisher bound to the decision topic template.
func Connect(ctx context.Context, cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (*Publisher, error) {
	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.MQTTBroker)
	opts.SetClientID(cfg.MQTTClientID)
	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.Warn("mqtt connection lost", "error", err)
	})

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	var c paho.Client
	err := backoff.Retry(func() error {
		c = paho.NewClient(opts)
		if token := c.Connect(); token.Wait() && token.Error() != nil {
			logger.Warn("mqtt connect failed", "broker", cfg.MQTTBroker, "error", token.Error())
			return token.Error()
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, connectAttempts-1), ctx))
	if err != nil {
		return nil, fmt.Errorf("connect mqtt broker %s: %w", cfg.MQTTBroker, err)
	}

	logger.Info("mqtt connected", "broker", cfg.MQTTBroker, "topic", cfg.MQTTDecisionTopic)
	return NewPublisher(c, cfg.MQTTDecisionTopic, metrics, logger), nil
}

// Publish sends the decision for c. Calculations without an irrigation
// decision are ignored.
func (p *Publisher) Publish(ctx context.Context, c domain.Calculation) error {
	ev, ok := NewDecisionEvent(c)
	if !ok {
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}

	topic := RenderTopic(p.topicTmpl, ev.Region, ev.Crop)
	token := p.client.Publish(topic, DecisionQoS, false, payload)

	select {
	case <-ctx.Done():
		p.metrics.DecisionErrors.Inc()
		return ctx.Err()
	case <-token.Done():
	}
	if err := token.Error(); err != nil {
		p.metrics.DecisionErrors.Inc()
		return fmt.Errorf("publish decision to %s: %w", topic, err)
	}

	p.metrics.DecisionsPublished.WithLabelValues(c.Status).Inc()
	p.logger.Debug("decision published", "topic", topic, "calculation_id", ev.CalculationID)
	return nil
}

// Close disconnects from the broker, allowing in-flight messages to drain.
func (p *Publisher) Close() {
	p.client.Disconnect(disconnectQuiet)
}
