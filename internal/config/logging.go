package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // empty = stderr
}

// OutputPath returns the zap sink for the configured file.
func (c LoggingConfig) OutputPath() string {
	if c.File == "" {
		return "stderr"
	}
	return c.File
}
