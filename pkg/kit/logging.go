package kit

import "go.uber.org/zap"

// NewLogger builds the production logger shared by every KalaVerse service.
// The service name is attached as an initial field so aggregated logs stay
// attributable.
func NewLogger(service string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"service": service}
	l, _ := cfg.Build()
	return l
}
