// Package server exposes the calculator engine over HTTP: a catalog
// listing, one calculate endpoint per registered type, the OpenAPI schema,
// and the operational endpoints.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/drewTuzson/uqual-financial-calculators/internal/analytics"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/calculator"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/openapi"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// Server handles the calculator API. The tracker may be nil when analytics
// is disabled.
type Server struct {
	registry *calculator.Registry
	tracker  *analytics.Tracker
	logger   *zap.Logger
}

// New constructs a Server.
func New(registry *calculator.Registry, tracker *analytics.Tracker, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{registry: registry, tracker: tracker, logger: logger}
}

// catalogEntry is one row of the calculator listing.
type catalogEntry struct {
	Type        string             `json:"type"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Fields      []schema.FieldSpec `json:"fields"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	calculators := s.registry.Calculators()
	entries := make([]catalogEntry, 0, len(calculators))
	for _, calc := range calculators {
		entries = append(entries, catalogEntry{
			Type:        calc.Type(),
			Name:        calc.Name(),
			Description: calc.Description(),
			Fields:      calc.Fields(),
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"calculators": entries})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	calcType := chi.URLParam(r, "type")

	var raw schema.RawInput
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "request body must be a JSON object",
		})
		return
	}

	start := time.Now()
	result, err := s.registry.Process(calcType, raw)
	calculationDuration.WithLabelValues(calcType).Observe(time.Since(start).Seconds())

	if err != nil {
		s.writeCalculationError(w, calcType, err)
		return
	}

	calculationsTotal.WithLabelValues(calcType, "success").Inc()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"results": result,
	})

	s.tracker.RecordCalculation(r.Context(), calcType, r.RemoteAddr, r.UserAgent(), raw, result)
}

func (s *Server) writeCalculationError(w http.ResponseWriter, calcType string, err error) {
	var verr *calculator.ValidationError
	var cerr *calculator.CalculationError

	switch {
	case errors.Is(err, calculator.ErrUnknownCalculatorType):
		calculationsTotal.WithLabelValues(calcType, "unknown_type").Inc()
		s.writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "unknown calculator type",
		})

	case errors.As(err, &verr):
		calculationsTotal.WithLabelValues(calcType, "invalid_input").Inc()
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"message": "input failed validation",
			"errors":  verr.Messages,
		})

	case errors.As(err, &cerr):
		calculationsTotal.WithLabelValues(calcType, "calculation_failed").Inc()
		s.logger.Error("calculation failed",
			zap.String("calculator", calcType),
			zap.Error(cerr.Unwrap()),
		)
		// Generic message only; the root cause stays in the logs.
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "calculation failed",
		})

	default:
		calculationsTotal.WithLabelValues(calcType, "error").Inc()
		s.logger.Error("unexpected processing error", zap.String("calculator", calcType), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "internal error",
		})
	}
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	doc, err := openapi.Export(s.registry, "UQUAL Financial Calculators", "1.0.0")
	if err != nil {
		s.logger.Error("schema export failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "internal error",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("response write failed", zap.Error(err))
	}
}
