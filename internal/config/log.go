package config

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string
	Format string
}

func loadLog() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
