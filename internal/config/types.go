package config

// StorageBackend selects where client preferences are kept.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageMemory StorageBackend = "memory"
)

// Config is the top-level configuration, corresponding to missioncontrol.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Auth    AuthConfig    `yaml:"auth" koanf:"auth"`
	Storage StorageConfig `yaml:"storage" koanf:"storage"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
	Data    DataConfig    `yaml:"data" koanf:"data"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// AuthConfig holds the dashboard passphrase.
type AuthConfig struct {
	Passphrase string `yaml:"passphrase" koanf:"passphrase"`
}

// StorageConfig selects the preference backend.
type StorageConfig struct {
	Backend StorageBackend `yaml:"backend" koanf:"backend"`
	Path    string         `yaml:"path" koanf:"path"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level"`
	Development bool   `yaml:"development" koanf:"development"`
}

// DataConfig points at the panel data. An empty file uses the built-in
// fixture.
type DataConfig struct {
	File string `yaml:"file" koanf:"file"`
}
