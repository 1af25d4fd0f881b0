// Package analytics persists anonymized calculator usage: sessions, the
// inputs and results of each calculation, and interaction events. Nothing
// identifying is ever written; see AnonymizeInput and AnonymizeIP.
package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tracker records calculator usage in the analytics database. A nil
// *Tracker is valid and drops every write, so callers need no enabled
// checks.
type Tracker struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewTracker wires a tracker onto an open, migrated database.
func NewTracker(db *sql.DB, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{db: db, logger: logger}
}

// Session identifies one visitor interaction with a calculator.
type Session struct {
	ID             string
	CalculatorType string
	UserIP         string
	UserAgent      string
	PageURL        string
	StartedAt      time.Time
}

// StartSession opens a session row and returns its generated ID. The caller
// may pass request metadata; the IP is anonymized before storage.
func (t *Tracker) StartSession(ctx context.Context, calculatorType, userIP, userAgent, pageURL string) (string, error) {
	if t == nil {
		return "", nil
	}

	sessionID := uuid.NewString()
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO calculator_sessions (session_id, calculator_type, user_ip, user_agent, page_url)
		VALUES (?, ?, ?, ?, ?)`,
		sessionID, calculatorType, AnonymizeIP(userIP), userAgent, pageURL,
	)
	if err != nil {
		return "", fmt.Errorf("analytics: start session: %w", err)
	}
	return sessionID, nil
}

// CompleteSession marks a session finished with the given completion rate.
func (t *Tracker) CompleteSession(ctx context.Context, sessionID string, completionRate float64) error {
	if t == nil {
		return nil
	}

	_, err := t.db.ExecContext(ctx, `
		UPDATE calculator_sessions
		SET completed_at = CURRENT_TIMESTAMP, completion_rate = ?
		WHERE session_id = ?`,
		completionRate, sessionID,
	)
	if err != nil {
		return fmt.Errorf("analytics: complete session: %w", err)
	}
	return nil
}

// SaveCalculation stores one calculation's anonymized input alongside its
// result.
func (t *Tracker) SaveCalculation(ctx context.Context, sessionID, calculatorType string, input map[string]any, result any) error {
	if t == nil {
		return nil
	}

	inputJSON, err := json.Marshal(AnonymizeInput(input))
	if err != nil {
		return fmt.Errorf("analytics: encode input: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("analytics: encode result: %w", err)
	}

	_, err = t.db.ExecContext(ctx, `
		INSERT INTO calculator_inputs (session_id, calculator_type, input_data, calculated_results)
		VALUES (?, ?, ?, ?)`,
		sessionID, calculatorType, string(inputJSON), string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("analytics: save calculation: %w", err)
	}
	return nil
}

// TrackEvent appends an interaction event to a session.
func (t *Tracker) TrackEvent(ctx context.Context, sessionID, eventType string, eventData map[string]any) error {
	if t == nil {
		return nil
	}

	dataJSON, err := json.Marshal(eventData)
	if err != nil {
		return fmt.Errorf("analytics: encode event: %w", err)
	}

	_, err = t.db.ExecContext(ctx, `
		INSERT INTO calculator_events (session_id, event_type, event_data)
		VALUES (?, ?, ?)`,
		sessionID, eventType, string(dataJSON),
	)
	if err != nil {
		return fmt.Errorf("analytics: track event: %w", err)
	}
	return nil
}

// RecordCalculation is the post-request convenience used by the HTTP layer:
// it opens a session, stores the calculation, and emits a completion event.
// Failures are logged, never surfaced; analytics must not fail a request.
func (t *Tracker) RecordCalculation(ctx context.Context, calculatorType, userIP, userAgent string, input map[string]any, result any) {
	if t == nil {
		return
	}

	sessionID, err := t.StartSession(ctx, calculatorType, userIP, userAgent, "")
	if err != nil {
		t.logger.Warn("analytics session not recorded", zap.String("calculator", calculatorType), zap.Error(err))
		return
	}

	if err := t.SaveCalculation(ctx, sessionID, calculatorType, input, result); err != nil {
		t.logger.Warn("calculation not recorded", zap.String("calculator", calculatorType), zap.Error(err))
		return
	}

	if err := t.TrackEvent(ctx, sessionID, "calculation_complete", map[string]any{
		"calculator_type": calculatorType,
	}); err != nil {
		t.logger.Warn("event not recorded", zap.String("calculator", calculatorType), zap.Error(err))
		return
	}

	if err := t.CompleteSession(ctx, sessionID, 100); err != nil {
		t.logger.Warn("session not completed", zap.String("calculator", calculatorType), zap.Error(err))
	}
}
