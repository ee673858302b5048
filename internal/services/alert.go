package services

import (
	"context"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// LogAlerter delivers alerts to the log. The screen surface reads the
// latest alert from the converter state.
type LogAlerter struct{}

// NewLogAlerter creates a LogAlerter.
func NewLogAlerter() *LogAlerter {
	return &LogAlerter{}
}

// Alert logs the alert at warn level.
func (LogAlerter) Alert(ctx context.Context, alert models.Alert) {
	logger.Log.Warnw("alert", "title", alert.Title, "message", alert.Message)
}
