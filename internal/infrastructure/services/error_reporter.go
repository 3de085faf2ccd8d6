package services

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// ErrorReporter logs unexpected errors together with the session they
// happened in.
type ErrorReporter struct {
	log     logger.FieldLogger
	session *entities.Session
}

// NewErrorReporter creates an ErrorReporter. A nil session reports errors
// raised before login.
func NewErrorReporter(log logger.FieldLogger, session *entities.Session) *ErrorReporter {
	return &ErrorReporter{log: log, session: session}
}

// Report logs err at error level with the given context fields.
func (it *ErrorReporter) Report(err error, fields logger.Fields) {
	if err == nil {
		return
	}
	entry := it.log.WithError(err)
	if it.session != nil {
		entry = entry.WithFields(logger.Fields{
			"session": it.session.ID,
			"team":    it.session.TeamID,
		})
	}
	entry.WithFields(fields).Error("Unexpected error")
}
