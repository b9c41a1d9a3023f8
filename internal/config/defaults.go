package config

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "missioncontrol.yml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MISSIONCTL_"

// DefaultConfig returns a Config with sensible defaults. The passphrase
// is left empty and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Storage: StorageConfig{
			Backend: StorageSQLite,
			Path:    "data/missioncontrol.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
