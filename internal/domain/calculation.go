package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for planting and current dates.
const DateLayout = "2006-01-02"

// ErrInvalidRequest wraps every validation failure of a CalculationRequest.
var ErrInvalidRequest = errors.New("invalid calculation request")

// CalculationType distinguishes PET-only requests from full irrigation checks.
type CalculationType string

const (
	CalculationPET        CalculationType = "pet"
	CalculationIrrigation CalculationType = "irrigation"
)

// Irrigation status labels carried on calculation records.
const (
	StatusIrrigationRequired    = "irrigation_required"
	StatusIrrigationNotRequired = "irrigation_not_required"
)

// Temperature source labels. TemperatureSupplied marks irrigation requests
// that carried a precomputed PET instead of a temperature.
const (
	TemperatureSourceRealtime = "realtime"
	TemperatureSourceManual   = "manual"
	TemperatureSupplied       = "supplied"
)

var calculationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:pet-irrigation:calculation"))

// CalculationRequest is the JSON body accepted on the source topic and by the
// HTTP API. Numeric soil fields are pointers so a missing value can be told
// apart from zero.
type CalculationRequest struct {
	RequestID       string          `json:"request_id,omitempty"`
	UserID          string          `json:"user_id,omitempty"`
	Type            CalculationType `json:"type"`
	Region          string          `json:"region"`
	TemperatureMode string          `json:"temperature_mode,omitempty"`
	Temperature     *float64        `json:"temperature,omitempty"`

	// PETValue lets an irrigation request reuse a PET computed earlier.
	PETValue *float64 `json:"pet_value,omitempty"`

	Crop                 string   `json:"crop,omitempty"`
	PlantingDate         string   `json:"planting_date,omitempty"`
	CurrentDate          string   `json:"current_date,omitempty"`
	SoilMoisture         *float64 `json:"gsm,omitempty"`
	ActiveRootDepth      *float64 `json:"al,omitempty"`
	BulkDensity          *float64 `json:"bd,omitempty"`
	FieldCapacity        *float64 `json:"fc,omitempty"`
	WateringThreshold    *float64 `json:"watering_threshold,omitempty"`
	IrrigationEfficiency *float64 `json:"irrigation_efficiency,omitempty"`
}

// Calculation is the record emitted for every evaluated request.
type Calculation struct {
	ID                string          `json:"id"`
	RequestID         string          `json:"request_id,omitempty"`
	UserID            string          `json:"user_id,omitempty"`
	Type              CalculationType `json:"calculation_type"`
	RegionName        string          `json:"region_name"`
	Temperature       *float64        `json:"temperature,omitempty"`
	TemperatureSource string          `json:"temperature_source"`
	PETValue          float64         `json:"pet_value"`

	CropName             string       `json:"crop_name,omitempty"`
	PlantingDate         string       `json:"planting_date,omitempty"`
	CurrentDate          string       `json:"current_date,omitempty"`
	SoilMoisture         *float64     `json:"gsm,omitempty"`
	ActiveRootDepth      *float64     `json:"al,omitempty"`
	BulkDensity          *float64     `json:"bd,omitempty"`
	FieldCapacity        *float64     `json:"fc,omitempty"`
	WateringThreshold    *float64     `json:"watering_threshold,omitempty"`
	IrrigationEfficiency *float64     `json:"irrigation_efficiency,omitempty"`
	DaysSincePlanting    *int         `json:"days_since_planting,omitempty"`
	GrowthStage          *GrowthStage `json:"growth_stage,omitempty"`
	Kc                   *float64     `json:"kc,omitempty"`
	ETc                  *float64     `json:"etc,omitempty"`
	ActualSoilWater      *float64     `json:"w_actual,omitempty"`
	ThresholdSoilWater   *float64     `json:"w_threshold,omitempty"`
	Status               string       `json:"status,omitempty"`

	// Non-finite values are dropped to nil; Status still names the branch taken.
	DaysToNextIrrigation      *float64 `json:"days_to_next_irrigation,omitempty"`
	RecommendedIrrigationRate *float64 `json:"recommended_irrigation_rate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ParseCalculationRequest decodes a source message. The message key stands in
// for a missing request_id, and the message timestamp for a missing current_date.
func ParseCalculationRequest(raw RawEvent) (CalculationRequest, error) {
	var req CalculationRequest
	if err := json.Unmarshal(raw.Value, &req); err != nil {
		return CalculationRequest{}, fmt.Errorf("%w: decode: %w", ErrInvalidRequest, err)
	}
	if req.RequestID == "" && len(raw.Key) > 0 {
		req.RequestID = string(raw.Key)
	}
	if req.CurrentDate == "" && !raw.Timestamp.IsZero() {
		req.CurrentDate = raw.Timestamp.UTC().Format(DateLayout)
	}
	return req, nil
}

// Validate checks that the request carries every field its type needs. It
// does not range-check soil parameters.
func (r CalculationRequest) Validate() error {
	var missing []string
	switch r.Type {
	case CalculationPET, CalculationIrrigation:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRequest, r.Type)
	}
	if strings.TrimSpace(r.Region) == "" {
		missing = append(missing, "region")
	}
	if _, err := ParseTemperatureMode(r.TemperatureMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if r.Type == CalculationIrrigation {
		if r.Crop == "" {
			missing = append(missing, "crop")
		}
		if r.PlantingDate == "" {
			missing = append(missing, "planting_date")
		}
		for name, v := range map[string]*float64{
			"gsm":                   r.SoilMoisture,
			"al":                    r.ActiveRootDepth,
			"bd":                    r.BulkDensity,
			"fc":                    r.FieldCapacity,
			"watering_threshold":    r.WateringThreshold,
			"irrigation_efficiency": r.IrrigationEfficiency,
		} {
			if v == nil {
				missing = append(missing, name)
			}
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}

	if r.PlantingDate != "" {
		if _, err := time.Parse(DateLayout, r.PlantingDate); err != nil {
			return fmt.Errorf("%w: planting_date: %w", ErrInvalidRequest, err)
		}
	}
	if r.CurrentDate != "" {
		if _, err := time.Parse(DateLayout, r.CurrentDate); err != nil {
			return fmt.Errorf("%w: current_date: %w", ErrInvalidRequest, err)
		}
	}
	return nil
}

// Evaluate runs a validated request through temperature resolution, the PET
// estimator, and for irrigation requests the irrigation advisor.
func Evaluate(ctx context.Context, req CalculationRequest, weather WeatherProvider) (Calculation, error) {
	if err := req.Validate(); err != nil {
		return Calculation{}, err
	}
	mode, _ := ParseTemperatureMode(req.TemperatureMode)

	calc := Calculation{
		RequestID:  req.RequestID,
		UserID:     req.UserID,
		Type:       req.Type,
		RegionName: req.Region,
		CreatedAt:  clock.Now().UTC(),
	}

	if req.Type == CalculationIrrigation && req.PETValue != nil {
		if IsOccupied(req.Region) {
			return Calculation{}, fmt.Errorf("%w: %s", ErrOccupiedRegion, req.Region)
		}
		calc.PETValue = *req.PETValue
		calc.Temperature = req.Temperature
		calc.TemperatureSource = TemperatureSupplied
	} else {
		t, err := ResolveTemperature(ctx, req.Region, mode, req.Temperature, weather)
		if err != nil {
			return Calculation{}, err
		}
		calc.Temperature = &t
		calc.TemperatureSource = string(mode)
		calc.PETValue = ComputePET(req.Region, t)
	}

	if req.Type == CalculationIrrigation {
		if err := assessInto(&calc, req); err != nil {
			return Calculation{}, err
		}
	}

	calc.ID = NewCalculationID(calc)
	return calc, nil
}

func assessInto(calc *Calculation, req CalculationRequest) error {
	planting, _ := time.Parse(DateLayout, req.PlantingDate)
	current := clock.Now().UTC()
	if req.CurrentDate != "" {
		current, _ = time.Parse(DateLayout, req.CurrentDate)
	}

	a, err := AssessIrrigation(IrrigationInput{
		CropName:             req.Crop,
		PlantingDate:         planting,
		CurrentDate:          current,
		PET:                  calc.PETValue,
		SoilMoisture:         *req.SoilMoisture,
		ActiveRootDepth:      *req.ActiveRootDepth,
		BulkDensity:          *req.BulkDensity,
		FieldCapacity:        *req.FieldCapacity,
		WateringThreshold:    *req.WateringThreshold,
		IrrigationEfficiency: *req.IrrigationEfficiency,
	})
	if err != nil {
		return err
	}

	calc.CropName = req.Crop
	calc.PlantingDate = planting.Format(DateLayout)
	calc.CurrentDate = current.Format(DateLayout)
	calc.SoilMoisture = req.SoilMoisture
	calc.ActiveRootDepth = req.ActiveRootDepth
	calc.BulkDensity = req.BulkDensity
	calc.FieldCapacity = req.FieldCapacity
	calc.WateringThreshold = req.WateringThreshold
	calc.IrrigationEfficiency = req.IrrigationEfficiency
	calc.DaysSincePlanting = &a.DaysSincePlanting
	calc.GrowthStage = &a.Stage
	calc.Kc = finite(a.Kc)
	calc.ETc = finite(a.ETc)
	calc.ActualSoilWater = finite(a.ActualSoilWater)
	calc.ThresholdSoilWater = finite(a.ThresholdSoilWater)
	if a.IrrigationRequired {
		calc.Status = StatusIrrigationRequired
		calc.RecommendedIrrigationRate = finite(*a.RecommendedIrrigationRate)
	} else {
		calc.Status = StatusIrrigationNotRequired
		calc.DaysToNextIrrigation = finite(*a.DaysToNextIrrigation)
	}
	return nil
}

// NewCalculationID derives a deterministic ID for a calculation, scoped to
// the requesting user. The request ID is used when present so replays of the
// same message collide. Otherwise the inputs and the evaluation day are used.
func NewCalculationID(c Calculation) string {
	key := c.UserID + "|" + c.RequestID
	if c.RequestID == "" {
		day := c.CurrentDate
		if day == "" {
			day = c.CreatedAt.UTC().Format(DateLayout)
		}
		key = fmt.Sprintf("%s|%s|%s|%g|%s|%s|%s|%s",
			c.UserID, c.Type, c.RegionName, c.PETValue, c.CropName, c.PlantingDate, day,
			formatOptional(c.SoilMoisture, c.ActiveRootDepth, c.BulkDensity, c.FieldCapacity, c.WateringThreshold, c.IrrigationEfficiency))
	}
	return uuid.NewSHA1(calculationNamespace, []byte(key)).String()
}

// SerializeCalculation marshals a calculation into a sink event keyed by its ID.
func SerializeCalculation(c Calculation) (OutputEvent, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize calculation: %w", err)
	}
	headers := map[string]string{
		"calculation_type": string(c.Type),
		"created_at":       c.CreatedAt.Format(time.RFC3339),
	}
	if c.Status != "" {
		headers["status"] = c.Status
	}
	return OutputEvent{
		Key:     []byte(c.ID),
		Value:   data,
		Headers: headers,
	}, nil
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func formatOptional(vals ...*float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		if v != nil {
			parts[i] = fmt.Sprintf("%g", *v)
		}
	}
	return strings.Join(parts, ",")
}

// Outcome classifies an evaluation error for metrics: "ok", "invalid" for
// malformed requests, "rejected" for well-formed requests the model refuses,
// and "error" for anything else (typically weather lookups).
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidTemperatureMode),
		errors.Is(err, ErrTemperatureRequired),
		errors.Is(err, ErrUnknownRegion):
		return "invalid"
	case errors.Is(err, ErrOccupiedRegion),
		errors.Is(err, ErrTemperatureOutOfRange),
		errors.Is(err, ErrWeatherNotConfigured),
		errors.Is(err, ErrCropNotFound),
		errors.Is(err, ErrCropCoefficientNotFound):
		return "rejected"
	default:
		return "error"
	}
}

// Transient reports whether an evaluation error may clear on its own, such as
// a weather outage. Invalid and rejected requests fail the same way every time.
func Transient(err error) bool {
	return err != nil && Outcome(err) == "error"
}
