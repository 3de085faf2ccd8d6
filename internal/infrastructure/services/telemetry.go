package services

import (
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// Telemetry records product events as structured log entries.
type Telemetry struct {
	log     logger.FieldLogger
	enabled bool
	session *entities.Session
}

// NewTelemetry creates a Telemetry sink.
func NewTelemetry(log logger.FieldLogger, settings entities.TelemetrySettings, session *entities.Session) *Telemetry {
	return &Telemetry{log: log, enabled: settings.Enabled, session: session}
}

// Enabled reports whether events are recorded.
func (it *Telemetry) Enabled() bool {
	return it.enabled
}

// Track records an event and returns its id, or "" when telemetry is off.
func (it *Telemetry) Track(event string, props map[string]any) string {
	if !it.enabled {
		return ""
	}

	id := uuid.NewString()
	fields := logger.Fields{"event": event, "event_id": id}
	if it.session != nil {
		fields["session"] = it.session.ID
		fields["user"] = it.session.UserID
	}
	for key, value := range props {
		fields["prop."+key] = value
	}
	it.log.WithFields(fields).Info("Telemetry event")
	return id
}
