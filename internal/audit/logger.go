package audit

import (
	"go.uber.org/zap"
)

// Logger writes booking events to the operator log. Phone numbers never reach
// it.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) {
	l.log.Info(ev.Action,
		zap.String("name", ev.FullName),
		zap.String("date", ev.Date),
		zap.String("time", ev.Time),
		zap.String("service", ev.Service),
		zap.String("status", ev.Status),
		zap.String("request_id", ev.RequestID),
	)
}
