package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible pickup
	// scatter, dice and world events. A seed of 0 means a random seed.
	Seed int64

	// Telemetry reports whether spans are exported. The game loop records
	// spans either way; with telemetry off they go to the global no-op provider.
	Telemetry bool
}
