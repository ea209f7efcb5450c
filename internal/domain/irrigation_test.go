package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tomatoInput() IrrigationInput {
	return IrrigationInput{
		CropName:             testTomato,
		PlantingDate:         date(2024, 4, 1),
		CurrentDate:          date(2024, 5, 21),
		PET:                  4.88,
		SoilMoisture:         15,
		ActiveRootDepth:      500,
		BulkDensity:          1.3,
		FieldCapacity:        25,
		WateringThreshold:    70,
		IrrigationEfficiency: 85,
	}
}

func TestStageFor(t *testing.T) {
	p := CropProfile{Name: "test", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 45, LateDays: 30}

	tests := []struct {
		days int
		want GrowthStage
	}{
		{-5, StageInitial},
		{0, StageInitial},
		{30, StageInitial},
		{31, StageDevelopment},
		{70, StageDevelopment},
		{71, StageMidSeason},
		{115, StageMidSeason},
		{116, StageLate},
		{145, StageLate},
		{10000, StageLate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StageFor(p, tt.days), "day %d", tt.days)
	}
}

func TestGrowthStage_Text(t *testing.T) {
	data, err := json.Marshal(map[string]GrowthStage{"s": StageMidSeason})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"midSeason"}`, string(data))

	var s GrowthStage
	require.NoError(t, s.UnmarshalText([]byte("late")))
	assert.Equal(t, StageLate, s)
	require.Error(t, s.UnmarshalText([]byte("harvest")))

	assert.Equal(t, "development", StageDevelopment.String())
	assert.Equal(t, "GrowthStage(7)", GrowthStage(7).String())
	_, err = GrowthStage(-1).MarshalText()
	require.Error(t, err)
}

func TestDaysSincePlanting(t *testing.T) {
	kyiv := time.FixedZone("EEST", 3*3600)

	tests := []struct {
		name              string
		planting, current time.Time
		want              int
	}{
		{"same day", date(2024, 4, 1), date(2024, 4, 1), 0},
		{"fifty days", date(2024, 4, 1), date(2024, 5, 21), 50},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"current before planting", date(2024, 4, 10), date(2024, 4, 1), -9},
		{"time of day ignored", time.Date(2024, 4, 1, 23, 59, 0, 0, time.UTC), time.Date(2024, 4, 2, 0, 1, 0, 0, time.UTC), 1},
		{"zone ignored", time.Date(2024, 4, 1, 1, 0, 0, 0, kyiv), date(2024, 4, 3), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysSincePlanting(tt.planting, tt.current))
		})
	}
}

func TestAssessIrrigation_TomatoRequired(t *testing.T) {
	a, err := AssessIrrigation(tomatoInput())
	require.NoError(t, err)

	assert.Equal(t, 50, a.DaysSincePlanting)
	assert.Equal(t, StageDevelopment, a.Stage)
	assert.InDelta(t, 1.15, a.Kc, 1e-12)
	assert.InDelta(t, 5.612, a.ETc, 1e-9)
	assert.InDelta(t, 97.5, a.ActualSoilWater, 1e-9)
	assert.InDelta(t, 113.75, a.ThresholdSoilWater, 1e-9)
	assert.True(t, a.IrrigationRequired)
	assert.Nil(t, a.DaysToNextIrrigation)
	require.NotNil(t, a.RecommendedIrrigationRate)
	assert.InDelta(t, 76.47, *a.RecommendedIrrigationRate, 0.005)
}

func TestAssessIrrigation_NotRequired(t *testing.T) {
	in := tomatoInput()
	in.SoilMoisture = 20 // W_actual = 130

	a, err := AssessIrrigation(in)
	require.NoError(t, err)

	assert.False(t, a.IrrigationRequired)
	assert.Nil(t, a.RecommendedIrrigationRate)
	require.NotNil(t, a.DaysToNextIrrigation)
	assert.InDelta(t, (130-113.75)/5.612, *a.DaysToNextIrrigation, 1e-9)
}

func TestAssessIrrigation_AtThresholdIsNotRequired(t *testing.T) {
	in := tomatoInput()
	in.SoilMoisture = 50
	in.FieldCapacity = 100
	in.WateringThreshold = 50

	a, err := AssessIrrigation(in)
	require.NoError(t, err)
	assert.False(t, a.IrrigationRequired)
	require.NotNil(t, a.DaysToNextIrrigation)
	assert.Zero(t, *a.DaysToNextIrrigation)
}

func TestAssessIrrigation_EfficiencyScaling(t *testing.T) {
	in := tomatoInput()
	in.IrrigationEfficiency = 100
	full, err := AssessIrrigation(in)
	require.NoError(t, err)

	in.IrrigationEfficiency = 50
	half, err := AssessIrrigation(in)
	require.NoError(t, err)

	assert.InDelta(t, 65.0, *full.RecommendedIrrigationRate, 1e-9)
	assert.InDelta(t, 2*(*full.RecommendedIrrigationRate), *half.RecommendedIrrigationRate, 1e-9)
}

func TestAssessIrrigation_StageDrivesKc(t *testing.T) {
	tests := []struct {
		current time.Time
		stage   GrowthStage
		kc      float64
	}{
		{date(2024, 4, 20), StageInitial, 0.6},
		{date(2024, 6, 20), StageMidSeason, 1.15},
		{date(2024, 9, 1), StageLate, 0.8},
	}

	for _, tt := range tests {
		in := tomatoInput()
		in.CurrentDate = tt.current
		a, err := AssessIrrigation(in)
		require.NoError(t, err)
		assert.Equal(t, tt.stage, a.Stage)
		assert.InDelta(t, tt.kc, a.Kc, 1e-12)
		assert.InDelta(t, tt.kc*in.PET, a.ETc, 1e-9)
	}
}

func TestAssessIrrigation_ZeroETcPropagates(t *testing.T) {
	in := tomatoInput()
	in.SoilMoisture = 20
	in.PET = 0

	a, err := AssessIrrigation(in)
	require.NoError(t, err)
	require.NotNil(t, a.DaysToNextIrrigation)
	assert.True(t, math.IsInf(*a.DaysToNextIrrigation, 1))
}

func TestAssessIrrigation_Errors(t *testing.T) {
	t.Run("unknown crop", func(t *testing.T) {
		in := tomatoInput()
		in.CropName = "Kale (June, Europe)"
		_, err := AssessIrrigation(in)
		require.ErrorIs(t, err, ErrCropNotFound)
	})

	t.Run("coefficient missing for first word", func(t *testing.T) {
		in := tomatoInput()
		in.CropName = "Sweet melons (May, Mediterranean)"
		_, err := AssessIrrigation(in)
		require.ErrorIs(t, err, ErrCropCoefficientNotFound)
		assert.Contains(t, err.Error(), `"Sweet"`)
	})
}
