package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing configuration.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format string) *ConfigBuilder {
	b.cfg.OutputFormat = format
	return b
}

// WithOutputFile sets the output file name. Empty means stdout.
func (b *ConfigBuilder) WithOutputFile(name string) *ConfigBuilder {
	b.cfg.OutputFile = name
	return b
}

// WithLineWidth sets the maximum line length.
func (b *ConfigBuilder) WithLineWidth(width int) *ConfigBuilder {
	b.cfg.LineWidth = width
	return b
}

// WithWorkers sets the worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithLogging sets the log level and format.
func (b *ConfigBuilder) WithLogging(level, format string) *ConfigBuilder {
	b.cfg.LogLevel = level
	b.cfg.LogFormat = format
	return b
}

// WithMaxMoveNumber sets the last move number kept.
func (b *ConfigBuilder) WithMaxMoveNumber(n int) *ConfigBuilder {
	b.cfg.MaxMoveNumber = n
	return b
}

// KeepComments controls whether comments are kept.
func (b *ConfigBuilder) KeepComments(keep bool) *ConfigBuilder {
	b.cfg.KeepComments = keep
	return b
}

// KeepAnnotations controls whether annotations are kept.
func (b *ConfigBuilder) KeepAnnotations(keep bool) *ConfigBuilder {
	b.cfg.KeepAnnotations = keep
	return b
}
