package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("req-1"),
		Value:     []byte(`{"type":"pet","region":"Kyiv"}`),
		Topic:     "calculation-requests",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("field-app")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("req-1"), raw.Key)
	assert.JSONEq(t, `{"type":"pet","region":"Kyiv"}`, string(raw.Value))
	assert.Equal(t, "calculation-requests", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "field-app", raw.Headers["source"])
	assert.Nil(t, raw.Commit, "commit is attached by the reader, not the mapper")
}

func TestMapMessageToRawEvent_NoHeaders(t *testing.T) {
	raw := mapMessageToRawEvent(kafkago.Message{Value: []byte(`{}`)})
	assert.NotNil(t, raw.Headers)
	assert.Empty(t, raw.Headers)
}

func TestToMessage(t *testing.T) {
	created := time.Date(2024, 5, 21, 9, 30, 0, 0, time.UTC)
	temp := 20.0
	calc := domain.Calculation{
		ID:          "calc-1",
		Type:        domain.CalculationPET,
		RegionName:  "Cherkasy",
		Temperature: &temp,
		CreatedAt:   created,
	}
	out, err := domain.SerializeCalculation(calc)
	require.NoError(t, err)

	msg := toMessage(out)

	assert.Equal(t, []byte("calc-1"), msg.Key)
	assert.Contains(t, string(msg.Value), `"region_name":"Cherkasy"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "calculation_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("pet"), msg.Headers[0].Value)
	assert.Equal(t, "created_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(created.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestToMessage_HeadersSorted(t *testing.T) {
	msg := toMessage(domain.OutputEvent{
		Key: []byte("k"),
		Headers: map[string]string{
			"status":           "irrigation_required",
			"calculation_type": "irrigation",
			"created_at":       "2024-05-21T09:30:00Z",
		},
	})

	keys := make([]string, len(msg.Headers))
	for i, h := range msg.Headers {
		keys[i] = h.Key
	}
	assert.Equal(t, []string{"calculation_type", "created_at", "status"}, keys)
}
