package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
	"github.com/couchcryptid/pet-irrigation-service/internal/observability"
)

const (
	maxBodyBytes = 64 << 10

	// statusClientClosedRequest is the nginx convention for a client that
	// went away before the response was written.
	statusClientClosedRequest = 499
)

// DecisionPublisher forwards irrigation decisions to field controllers.
type DecisionPublisher interface {
	Publish(ctx context.Context, c domain.Calculation) error
}

// API serves the PET and irrigation endpoints under /api/v1.
type API struct {
	weather   domain.WeatherProvider
	decisions DecisionPublisher
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewAPI creates the API handlers. A nil weather provider rejects realtime
// requests with 503; a nil publisher disables decision fan-out.
func NewAPI(weather domain.WeatherProvider, decisions DecisionPublisher, metrics *observability.Metrics, logger *slog.Logger) *API {
	return &API{weather: weather, decisions: decisions, metrics: metrics, logger: logger}
}

func (a *API) register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/regions", a.handleRegions)
	mux.HandleFunc("GET /api/v1/crops", a.handleCrops)
	mux.HandleFunc("GET /api/v1/reference", a.handleReference)
	mux.HandleFunc("POST /api/v1/pet", a.handlePET)
	mux.HandleFunc("POST /api/v1/irrigation", a.handleIrrigation)
}

// cropView is a crop profile annotated with its coefficient lookup result.
type cropView struct {
	domain.CropProfile
	GeneralName           string `json:"general_name"`
	SeasonDays            int    `json:"season_days"`
	CoefficientsAvailable bool   `json:"coefficients_available"`
}

type petRequest struct {
	Region          string   `json:"region"`
	TemperatureMode string   `json:"temperature_mode"`
	Temperature     *float64 `json:"temperature"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Regions())
}

func (a *API) handleCrops(w http.ResponseWriter, _ *http.Request) {
	profiles := domain.CropProfiles()
	out := make([]cropView, len(profiles))
	for i, p := range profiles {
		general := domain.GeneralCropName(p.Name)
		_, err := domain.FindCoefficients(general)
		out[i] = cropView{
			CropProfile:           p,
			GeneralName:           general,
			SeasonDays:            p.SeasonDays(),
			CoefficientsAvailable: err == nil,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleReference(w http.ResponseWriter, r *http.Request) {
	category := domain.CropCategory(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, domain.Reference(category))
}

func (a *API) handlePET(w http.ResponseWriter, r *http.Request) {
	var body petRequest
	if err := decodeBody(w, r, &body); err != nil {
		a.writeError(w, err)
		return
	}
	a.evaluate(w, r, domain.CalculationRequest{
		Type:            domain.CalculationPET,
		Region:          body.Region,
		TemperatureMode: body.TemperatureMode,
		Temperature:     body.Temperature,
	})
}

func (a *API) handleIrrigation(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculationRequest
	if err := decodeBody(w, r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Type = domain.CalculationIrrigation
	a.evaluate(w, r, req)
}

func (a *API) evaluate(w http.ResponseWriter, r *http.Request, req domain.CalculationRequest) {
	calc, err := domain.Evaluate(r.Context(), req, a.weather)
	a.metrics.Calculations.WithLabelValues(string(req.Type), domain.Outcome(err)).Inc()
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.metrics.PETValues.Observe(calc.PETValue)

	if a.decisions != nil {
		if err := a.decisions.Publish(r.Context(), calc); err != nil {
			a.logger.Warn("publish decision failed", "calculation_id", calc.ID, "error", err)
		}
	}
	writeJSON(w, http.StatusOK, calc)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return nil
}

// statusFor maps evaluation errors to HTTP status codes. Anything not
// recognised came from the weather upstream. Only 5xx statuses are logged.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidTemperatureMode),
		errors.Is(err, domain.ErrTemperatureRequired),
		errors.Is(err, domain.ErrUnknownRegion):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOccupiedRegion),
		errors.Is(err, domain.ErrTemperatureOutOfRange),
		errors.Is(err, domain.ErrCropCoefficientNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, domain.ErrWeatherUnavailable),
		errors.Is(err, domain.ErrWeatherNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.logger.Error("calculation failed", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client may have gone away
}
