package interfaces

// Dependencies bundles the infrastructure handed to core services.
type Dependencies struct {
	// Cache provides caching functionality.
	Cache Cache

	// HTTPClient provides HTTP request functionality.
	HTTPClient HTTPClient

	// Logger provides structured logging.
	Logger Logger
}
