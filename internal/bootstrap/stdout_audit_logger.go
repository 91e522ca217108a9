package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the process logger. A
// durable sink can replace it behind the AuditLogger interface without
// touching the server.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutAuditLogger{logger: l}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info(entry.Message,
		zap.String("action", entry.Action),
		zap.Any("meta", entry.Meta),
	)
}
