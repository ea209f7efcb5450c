package domain

import (
	"fmt"
	"time"
)

// GrowthStage is one of the four FAO-56 crop development stages.
type GrowthStage int

const (
	StageInitial GrowthStage = iota
	StageDevelopment
	StageMidSeason
	StageLate
)

var growthStageNames = [...]string{"initial", "development", "midSeason", "late"}

func (s GrowthStage) String() string {
	if s < StageInitial || s > StageLate {
		return fmt.Sprintf("GrowthStage(%d)", int(s))
	}
	return growthStageNames[s]
}

// MarshalText encodes the stage by name so JSON payloads carry "midSeason"
// rather than 2.
func (s GrowthStage) MarshalText() ([]byte, error) {
	if s < StageInitial || s > StageLate {
		return nil, fmt.Errorf("invalid growth stage %d", int(s))
	}
	return []byte(growthStageNames[s]), nil
}

// UnmarshalText decodes a stage name produced by MarshalText.
func (s *GrowthStage) UnmarshalText(b []byte) error {
	for i, name := range growthStageNames {
		if string(b) == name {
			*s = GrowthStage(i)
			return nil
		}
	}
	return fmt.Errorf("unknown growth stage %q", b)
}

// StageFor classifies days since planting into a growth stage. Bands are
// inclusive on the upper bound; anything beyond the mid-season band is late.
func StageFor(p CropProfile, days int) GrowthStage {
	switch {
	case days <= p.InitialDays:
		return StageInitial
	case days <= p.InitialDays+p.DevelopmentDays:
		return StageDevelopment
	case days <= p.InitialDays+p.DevelopmentDays+p.MidSeasonDays:
		return StageMidSeason
	default:
		return StageLate
	}
}

// DaysSincePlanting returns the whole calendar days from planting to current.
// Clock time and zone offsets are ignored; the result is negative when
// current precedes planting.
func DaysSincePlanting(planting, current time.Time) int {
	p := time.Date(planting.Year(), planting.Month(), planting.Day(), 0, 0, 0, 0, time.UTC)
	c := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, time.UTC)
	return int(c.Sub(p).Hours() / 24)
}

// IrrigationInput carries everything AssessIrrigation needs. Percentages are
// expressed 0–100.
type IrrigationInput struct {
	CropName             string
	PlantingDate         time.Time
	CurrentDate          time.Time
	PET                  float64 // mm/day
	SoilMoisture         float64 // gsm, % of root-zone volume
	ActiveRootDepth      float64 // al, mm
	BulkDensity          float64 // bd, g/cm³
	FieldCapacity        float64 // fc, %
	WateringThreshold    float64 // wt, % of field capacity
	IrrigationEfficiency float64 // %
}

// IrrigationAssessment is the outcome of a soil water balance check. Exactly
// one of DaysToNextIrrigation and RecommendedIrrigationRate is set.
type IrrigationAssessment struct {
	Stage                     GrowthStage
	DaysSincePlanting         int
	Kc                        float64
	ETc                       float64 // mm/day
	ActualSoilWater           float64
	ThresholdSoilWater        float64
	IrrigationRequired        bool
	DaysToNextIrrigation      *float64
	RecommendedIrrigationRate *float64 // mm
}

// AssessIrrigation looks up the crop profile and its Kc set, determines the
// growth stage, and runs the soil water balance. Numeric inputs are not range
// checked; degenerate values propagate into the result as ±Inf or NaN.
func AssessIrrigation(in IrrigationInput) (IrrigationAssessment, error) {
	profile, err := FindCropProfile(in.CropName)
	if err != nil {
		return IrrigationAssessment{}, err
	}
	coefficients, err := FindCoefficients(GeneralCropName(in.CropName))
	if err != nil {
		return IrrigationAssessment{}, err
	}

	days := DaysSincePlanting(in.PlantingDate, in.CurrentDate)
	stage := StageFor(profile, days)
	kc := coefficients.ForStage(stage)
	etc := kc * in.PET

	wActual := in.SoilMoisture / 100 * in.ActiveRootDepth * in.BulkDensity
	wThreshold := in.WateringThreshold / 100 * in.FieldCapacity / 100 * in.ActiveRootDepth * in.BulkDensity

	a := IrrigationAssessment{
		Stage:              stage,
		DaysSincePlanting:  days,
		Kc:                 kc,
		ETc:                etc,
		ActualSoilWater:    wActual,
		ThresholdSoilWater: wThreshold,
	}

	if wActual >= wThreshold {
		d := (wActual - wThreshold) / etc
		a.DaysToNextIrrigation = &d
		return a, nil
	}

	deficit := (in.FieldCapacity - in.SoilMoisture) / 100 * in.ActiveRootDepth * in.BulkDensity
	rate := deficit / (in.IrrigationEfficiency / 100)
	a.IrrigationRequired = true
	a.RecommendedIrrigationRate = &rate
	return a, nil
}
