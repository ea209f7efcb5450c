// Command genrequests writes deterministic sample calculation requests for
// every active region, as JSON lines, plus the calculation records the
// advisor is expected to produce for them. The requests can optionally be
// published straight to the source Kafka topic for load testing.
//
// Usage:
//
//	go run ./cmd/genrequests \
//	  -requests-out data/sample/requests.jsonl \
//	  -expected-out data/sample/expected.json \
//	  [-brokers localhost:9092 -topic calculation-requests]
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
)

var (
	plantingDate = "2024-04-01"
	currentDate  = "2024-05-21"
	generatedAt  = time.Date(2024, time.May, 21, 6, 0, 0, 0, time.UTC)
)

// sampleCrops are in the initial, development or mid-season stage on currentDate.
var sampleCrops = []string{
	"Tomato (April/May, Mediterranean)",
	"Potato (April, Europe)",
	"Carrots (Feb/Mar, Mediterranean)",
	"Sugarbeet (April, Idaho, USA)",
	"Maize (sweet) (May/June, Mediterranean)",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	requestsOut := flag.String("requests-out", "", "output path for JSON-lines requests")
	expectedOut := flag.String("expected-out", "", "output path for expected calculation records")
	brokers := flag.String("brokers", "", "comma-separated Kafka brokers; publish requests when set")
	topic := flag.String("topic", "calculation-requests", "Kafka topic for -brokers")
	flag.Parse()

	if *requestsOut == "" || *expectedOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -requests-out, -expected-out")
	}

	// Fixed clock so CreatedAt and IDs are reproducible.
	domain.SetClock(clockwork.NewFakeClockAt(generatedAt))
	defer domain.SetClock(nil)

	reqs := buildRequests()
	expected := make([]domain.Calculation, 0, len(reqs))
	for _, r := range reqs {
		calc, err := domain.Evaluate(context.Background(), r, nil)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", r.RequestID, err)
		}
		expected = append(expected, calc)
	}
	log.Printf("generated %d requests", len(reqs))

	if err := writeJSONLines(*requestsOut, reqs); err != nil {
		return fmt.Errorf("writing requests: %w", err)
	}
	log.Printf("wrote requests: %s", *requestsOut)

	if err := writeJSON(*expectedOut, expected); err != nil {
		return fmt.Errorf("writing expected records: %w", err)
	}
	log.Printf("wrote expected records: %s", *expectedOut)

	if *brokers != "" {
		if err := publish(strings.Split(*brokers, ","), *topic, reqs); err != nil {
			return fmt.Errorf("publishing requests: %w", err)
		}
		log.Printf("published %d requests to %s", len(reqs), *topic)
	}

	printStats(expected)
	return nil
}

// buildRequests returns one PET and one irrigation request per crop for every
// region that accepts calculations. Temperatures and soil moisture vary with
// the index so outcomes differ across regions.
func buildRequests() []domain.CalculationRequest {
	var out []domain.CalculationRequest
	i := 0
	for _, region := range domain.Regions() {
		if region.Occupied {
			continue
		}
		temp := float64(10 + i%25)
		out = append(out, domain.CalculationRequest{
			RequestID:       fmt.Sprintf("pet-%s", slug(region.Name)),
			Type:            domain.CalculationPET,
			Region:          region.Name,
			TemperatureMode: string(domain.TemperatureManual),
			Temperature:     ptr(temp),
		})
		for j, crop := range sampleCrops {
			gsm := float64(12 + (i+j)%14)
			out = append(out, domain.CalculationRequest{
				RequestID:            fmt.Sprintf("irr-%s-%d", slug(region.Name), j),
				Type:                 domain.CalculationIrrigation,
				Region:               region.Name,
				TemperatureMode:      string(domain.TemperatureManual),
				Temperature:          ptr(temp),
				Crop:                 crop,
				PlantingDate:         plantingDate,
				CurrentDate:          currentDate,
				SoilMoisture:         ptr(gsm),
				ActiveRootDepth:      ptr(500.0),
				BulkDensity:          ptr(1.3),
				FieldCapacity:        ptr(25.0),
				WateringThreshold:    ptr(70.0),
				IrrigationEfficiency: ptr(85.0),
			})
		}
		i++
	}
	return out
}

func publish(brokers []string, topic string, reqs []domain.CalculationRequest) error {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	defer w.Close()

	msgs := make([]kafkago.Message, len(reqs))
	for i, r := range reqs {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		msgs[i] = kafkago.Message{Key: []byte(r.RequestID), Value: data, Time: generatedAt}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return w.WriteMessages(ctx, msgs...)
}

func writeJSONLines(path string, reqs []domain.CalculationRequest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	for _, r := range reqs {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(calcs []domain.Calculation) {
	byType := map[domain.CalculationType]int{}
	byStatus := map[string]int{}
	byStage := map[string]int{}
	for _, c := range calcs {
		byType[c.Type]++
		if c.Status != "" {
			byStatus[c.Status]++
		}
		if c.GrowthStage != nil {
			byStage[c.GrowthStage.String()]++
		}
	}
	log.Printf("types: pet=%d irrigation=%d", byType[domain.CalculationPET], byType[domain.CalculationIrrigation])
	log.Printf("status: required=%d not_required=%d",
		byStatus[domain.StatusIrrigationRequired], byStatus[domain.StatusIrrigationNotRequired])
	log.Printf("stages: %v", byStage)
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}

func ptr[T any](v T) *T { return &v }
