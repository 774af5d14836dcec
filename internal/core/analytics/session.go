package analytics

import (
	"strings"
	"time"

	"focustrack/internal/core/model"
)

// Session is one completed focus or break interval. Sessions are never
// modified after creation.
type Session struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"`
	Type     string    `json:"type"`
	Note     string    `json:"note"`
}

// NewSession builds the log entry for an interval of sessionType that
// finished at completedAt.
func NewSession(id int64, sessionType model.SessionType, note string, completedAt time.Time) Session {
	return Session{
		ID:       id,
		Date:     completedAt,
		Duration: sessionType.Minutes(),
		Type:     sessionType.Label(),
		Note:     strings.TrimSpace(note),
	}
}

// SessionType maps the stored label back to its type.
func (session Session) SessionType() model.SessionType {
	if session.Type == model.SessionBreak.Label() {
		return model.SessionBreak
	}
	return model.SessionFocus
}
