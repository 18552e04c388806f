package optimistic

import "go.uber.org/zap"

// NopNotifier discards all outcome messages.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Failure(string) {}

// LogNotifier records outcomes through zap; the storefront surfaces them as
// toast-style notifications client-side, the BFF only keeps the trail.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("notify")}
}

func (n *LogNotifier) Success(message string) {
	n.logger.Info("action succeeded", zap.String("message", message))
}

func (n *LogNotifier) Failure(message string) {
	n.logger.Warn("action failed", zap.String("message", message))
}
