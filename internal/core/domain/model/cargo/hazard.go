package cargo

import (
	"fmt"
	"log/slog"
)

// HazardNotifier is implemented by containers that can raise hazard alerts.
// The capability does not depend on the cargo actually being hazardous: a
// non-hazardous liquid container can still report a dangerous situation.
type HazardNotifier interface {
	NotifyHazard(message string) string
}

// FormatHazardAlert renders the alert line for a container serial.
func FormatHazardAlert(serial, message string) string {
	return fmt.Sprintf("HAZARD ALERT [%s]: %s", serial, message)
}

func alertLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", "hazard_alerts")
}
