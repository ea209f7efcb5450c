package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 21, 9, 30, 0, 0, time.UTC)

func freezeClock(t *testing.T) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(testNow))
	t.Cleanup(func() { SetClock(nil) })
}

func tomatoRequest() CalculationRequest {
	return CalculationRequest{
		RequestID:            "req-1",
		Type:                 CalculationIrrigation,
		Region:               "Cherkasy",
		TemperatureMode:      "manual",
		Temperature:          ptr(20.0),
		Crop:                 testTomato,
		PlantingDate:         "2024-04-01",
		CurrentDate:          "2024-05-21",
		SoilMoisture:         ptr(15.0),
		ActiveRootDepth:      ptr(500.0),
		BulkDensity:          ptr(1.3),
		FieldCapacity:        ptr(25.0),
		WateringThreshold:    ptr(70.0),
		IrrigationEfficiency: ptr(85.0),
	}
}

func TestParseCalculationRequest(t *testing.T) {
	ts := time.Date(2024, 6, 1, 22, 0, 0, 0, time.FixedZone("EEST", 3*3600))
	raw := RawEvent{
		Key:       []byte("msg-7"),
		Value:     []byte(`{"type":"pet","region":"Kyiv","temperature_mode":"manual","temperature":12.5}`),
		Timestamp: ts,
	}

	req, err := ParseCalculationRequest(raw)
	require.NoError(t, err)

	want := CalculationRequest{
		RequestID:       "msg-7",
		Type:            CalculationPET,
		Region:          "Kyiv",
		TemperatureMode: "manual",
		Temperature:     ptr(12.5),
		CurrentDate:     "2024-06-01",
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}

	_, err = ParseCalculationRequest(RawEvent{Value: []byte("{broken")})
	require.Error(t, err)
}

func TestCalculationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CalculationRequest)
		wantErr string
	}{
		{"complete irrigation", func(*CalculationRequest) {}, ""},
		{"pet only needs region", func(r *CalculationRequest) { *r = CalculationRequest{Type: CalculationPET, Region: "Kyiv"} }, ""},
		{"unknown type", func(r *CalculationRequest) { r.Type = "yield" }, `unknown type "yield"`},
		{"missing region", func(r *CalculationRequest) { r.Region = " " }, "missing region"},
		{"bad mode", func(r *CalculationRequest) { r.TemperatureMode = "forecast" }, "invalid temperature mode"},
		{"missing soil fields", func(r *CalculationRequest) { r.BulkDensity = nil; r.SoilMoisture = nil }, "missing bd, gsm"},
		{"missing crop", func(r *CalculationRequest) { r.Crop = "" }, "missing crop"},
		{"bad planting date", func(r *CalculationRequest) { r.PlantingDate = "01.04.2024" }, "planting_date"},
		{"bad current date", func(r *CalculationRequest) { r.CurrentDate = "2024-13-01" }, "current_date"},
		{"zero values are present", func(r *CalculationRequest) { r.SoilMoisture = ptr(0.0) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tomatoRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEvaluate_TomatoEndToEnd(t *testing.T) {
	freezeClock(t)

	calc, err := Evaluate(context.Background(), tomatoRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, CalculationIrrigation, calc.Type)
	assert.Equal(t, "manual", calc.TemperatureSource)
	assert.InDelta(t, 4.88, calc.PETValue, 1e-9)
	require.NotNil(t, calc.GrowthStage)
	assert.Equal(t, StageDevelopment, *calc.GrowthStage)
	assert.Equal(t, 50, *calc.DaysSincePlanting)
	assert.InDelta(t, 5.612, *calc.ETc, 1e-9)
	assert.InDelta(t, 97.5, *calc.ActualSoilWater, 1e-9)
	assert.InDelta(t, 113.75, *calc.ThresholdSoilWater, 1e-9)
	assert.Equal(t, StatusIrrigationRequired, calc.Status)
	assert.InDelta(t, 76.47, *calc.RecommendedIrrigationRate, 0.005)
	assert.Nil(t, calc.DaysToNextIrrigation)
	assert.Equal(t, testNow, calc.CreatedAt)
	assert.NotEmpty(t, calc.ID)
}

func TestEvaluate_PETRealtime(t *testing.T) {
	freezeClock(t)
	weather := &stubWeather{temp: 20.004}

	calc, err := Evaluate(context.Background(), CalculationRequest{Type: CalculationPET, Region: "Cherkasy"}, weather)
	require.NoError(t, err)

	assert.Equal(t, TemperatureSourceRealtime, calc.TemperatureSource)
	assert.InDelta(t, 20.0, *calc.Temperature, 1e-12)
	assert.InDelta(t, 4.88, calc.PETValue, 1e-9)
	assert.Empty(t, calc.Status)
	assert.Nil(t, calc.GrowthStage)
}

func TestEvaluate_SuppliedPET(t *testing.T) {
	freezeClock(t)
	req := tomatoRequest()
	req.Temperature = nil
	req.TemperatureMode = ""
	req.PETValue = ptr(4.88)

	calc, err := Evaluate(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, TemperatureSupplied, calc.TemperatureSource)
	assert.Nil(t, calc.Temperature)
	assert.InDelta(t, 5.612, *calc.ETc, 1e-9)

	req.Region = "Luhansk"
	_, err = Evaluate(context.Background(), req, nil)
	require.ErrorIs(t, err, ErrOccupiedRegion)
}

func TestEvaluate_CurrentDateDefaultsToToday(t *testing.T) {
	freezeClock(t)
	req := tomatoRequest()
	req.CurrentDate = ""

	calc, err := Evaluate(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-21", calc.CurrentDate)
	assert.Equal(t, 50, *calc.DaysSincePlanting)
}

func TestEvaluate_Errors(t *testing.T) {
	freezeClock(t)

	req := tomatoRequest()
	req.Crop = "Water melons (April, Italy)"
	_, err := Evaluate(context.Background(), req, nil)
	require.ErrorIs(t, err, ErrCropCoefficientNotFound)

	req = tomatoRequest()
	req.Crop = "Hops (May, Europe)"
	_, err = Evaluate(context.Background(), req, nil)
	require.ErrorIs(t, err, ErrCropNotFound)

	req = tomatoRequest()
	req.Temperature = ptr(75.0)
	_, err = Evaluate(context.Background(), req, nil)
	require.ErrorIs(t, err, ErrTemperatureOutOfRange)

	req = tomatoRequest()
	req.SoilMoisture = nil
	_, err = Evaluate(context.Background(), req, nil)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestEvaluate_NonFiniteResultsBecomeNil(t *testing.T) {
	freezeClock(t)
	req := tomatoRequest()
	req.PETValue = ptr(0.0)
	req.SoilMoisture = ptr(20.0)

	calc, err := Evaluate(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusIrrigationNotRequired, calc.Status)
	assert.Nil(t, calc.DaysToNextIrrigation)

	_, err = SerializeCalculation(calc)
	require.NoError(t, err)
}

func TestNewCalculationID(t *testing.T) {
	a := Calculation{RequestID: "req-1"}
	b := Calculation{RequestID: "req-1", PETValue: 9}
	assert.Equal(t, NewCalculationID(a), NewCalculationID(b))
	assert.Len(t, NewCalculationID(a), 36)

	c := Calculation{Type: CalculationPET, RegionName: "Kyiv", PETValue: 4.64}
	d := Calculation{Type: CalculationPET, RegionName: "Kyiv", PETValue: 4.65}
	assert.Equal(t, NewCalculationID(c), NewCalculationID(c))
	assert.NotEqual(t, NewCalculationID(c), NewCalculationID(d))
	assert.NotEqual(t, NewCalculationID(a), NewCalculationID(c))
}

func TestNewCalculationID_ScopedToUserAndDay(t *testing.T) {
	day := time.Date(2024, 5, 21, 9, 30, 0, 0, time.UTC)
	pet := func(user string, at time.Time) Calculation {
		return Calculation{UserID: user, Type: CalculationPET, RegionName: "Kyiv", PETValue: 4.88, CreatedAt: at}
	}

	a := NewCalculationID(pet("farmer-a", day))
	assert.NotEqual(t, a, NewCalculationID(pet("farmer-b", day)), "different users")
	assert.NotEqual(t, a, NewCalculationID(pet("farmer-a", day.AddDate(0, 0, 1))), "different days")
	assert.Equal(t, a, NewCalculationID(pet("farmer-a", day.Add(2*time.Hour))), "same user, same day")

	withReq := func(user string) Calculation { return Calculation{UserID: user, RequestID: "req-1"} }
	assert.NotEqual(t, NewCalculationID(withReq("farmer-a")), NewCalculationID(withReq("farmer-b")))
}

func TestSerializeCalculation(t *testing.T) {
	freezeClock(t)
	calc, err := Evaluate(context.Background(), tomatoRequest(), nil)
	require.NoError(t, err)

	out, err := SerializeCalculation(calc)
	require.NoError(t, err)

	assert.Equal(t, []byte(calc.ID), out.Key)
	assert.Equal(t, "irrigation", out.Headers["calculation_type"])
	assert.Equal(t, StatusIrrigationRequired, out.Headers["status"])
	assert.Equal(t, "2024-05-21T09:30:00Z", out.Headers["created_at"])

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, "development", decoded["growth_stage"])
	assert.Equal(t, "Cherkasy", decoded["region_name"])
	assert.NotContains(t, decoded, "days_to_next_irrigation")
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{fmt.Errorf("%w: missing gsm", ErrInvalidRequest), "invalid"},
		{ErrTemperatureRequired, "invalid"},
		{fmt.Errorf("%w: Atlantis", ErrUnknownRegion), "invalid"},
		{fmt.Errorf("%w: Luhansk", ErrOccupiedRegion), "rejected"},
		{ErrTemperatureOutOfRange, "rejected"},
		{ErrCropCoefficientNotFound, "rejected"},
		{fmt.Errorf("fetch temperature for Kyiv: %w", errors.New("status 502")), "error"},
		{ErrWeatherUnavailable, "error"},
		{ErrWeatherNotConfigured, "rejected"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err), "%v", tt.err)
	}
}

func TestTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"invalid request", fmt.Errorf("%w: decode", ErrInvalidRequest), false},
		{"occupied region", ErrOccupiedRegion, false},
		{"weather not configured", ErrWeatherNotConfigured, false},
		{"breaker open", fmt.Errorf("%w: circuit breaker is open", ErrWeatherUnavailable), true},
		{"upstream failure", fmt.Errorf("fetch temperature for Kyiv: %w", errors.New("status 503")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transient(tt.err))
		})
	}
}
