package engine

import "log/slog"

// LoggingObserver logs all table events using structured logging.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer on the default logger.
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{
		logger: slog.Default(),
	}
}

// OnEvent implements the Observer interface.
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Info("table_lifecycle",
		slog.String("event", string(event.Type)),
		slog.String("session_id", event.SessionID),
		slog.String("table", event.Table),
		slog.String("detail", event.Detail),
		slog.Time("timestamp", event.Timestamp),
	)
}
