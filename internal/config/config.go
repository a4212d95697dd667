package config

// Config holds runtime configuration for the generator CLI.
type Config struct {
	Seed         int64
	Matches      int
	TableSize    int
	Workers      int
	SquadSize    int
	SquadKeepers int
	Output       string
	Log          LogConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Seed:         int64EnvOrDefault(envSeed, defaultSeed),
		Matches:      intEnvOrDefault(envMatches, defaultMatches),
		TableSize:    intEnvOrDefault(envTableSize, defaultTableSize),
		Workers:      intEnvOrDefault(envWorkers, defaultWorkers),
		SquadSize:    intEnvOrDefault(envSquadSize, defaultSquadSize),
		SquadKeepers: intEnvOrDefault(envSquadKeepers, defaultSquadKeepers),
		Output:       envOrDefault(envOutput, defaultOutput),
		Log:          loadLog(),
		Metrics:      loadMetrics(),
	}
}
