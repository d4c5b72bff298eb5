package config

import "io"

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

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLayout sets the opening layout.
func (b *ConfigBuilder) WithLayout(layout Layout) *ConfigBuilder {
	b.cfg.Layout = layout
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Display.Format = format
	return b
}

// WithColour sets the colour mode.
func (b *ConfigBuilder) WithColour(mode ColourMode) *ConfigBuilder {
	b.cfg.Display.Colour = mode
	return b
}

// WithClearScreen enables or disables clearing the screen between boards.
func (b *ConfigBuilder) WithClearScreen(enabled bool) *ConfigBuilder {
	b.cfg.Display.ClearScreen = enabled
	return b
}

// WithShowCaptured enables or disables the captured pieces listing.
func (b *ConfigBuilder) WithShowCaptured(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowCaptured = enabled
	return b
}

// WithMovesFile sets the scripted moves file.
func (b *ConfigBuilder) WithMovesFile(path string) *ConfigBuilder {
	b.cfg.MovesFile = path
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log file writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
