package interfaces

// Logger is the logging contract used throughout the pipeline. It keeps the
// core packages independent of the concrete logging library (logrus today).
//
// Example:
//
//	logger.Info("Found new articles from RSS", map[string]interface{}{
//		"source": "Example News",
//		"count":  4,
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general progress messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs recoverable problems, e.g. a source that is skipped.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention but do not stop the run.
	Error(msg string, fields map[string]interface{})
}
