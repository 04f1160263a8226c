package config

// Default values for configuration fields
const (
	DefaultMaxItems = 20
	DefaultLogLevel = "info"

	// MinMaxItems and MaxMaxItems bound mru.max_items.
	MinMaxItems = 1
	MaxMaxItems = 1000
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills fields the file left unset.
func ApplyDefaults(cfg *Config) {
	if cfg.MRU.MaxItems == nil {
		maxItems := DefaultMaxItems
		cfg.MRU.MaxItems = &maxItems
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
