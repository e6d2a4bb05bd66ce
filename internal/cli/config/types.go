// Package config loads olxgen CLI settings from defaults, an optional
// olxgen.yaml file, OLXGEN_ environment variables and command flags.
package config

// Default values applied before any other source.
const (
	DefaultDefsDir = "gui"
	DefaultFormat  = "pretty"
	DefaultIndent  = 2
)

// Config holds all CLI configuration options.
type Config struct {
	DefsDir string            `koanf:"defs"`
	Builtin bool              `koanf:"builtin"`
	Format  string            `koanf:"format"`
	Output  string            `koanf:"output"`
	Indent  int               `koanf:"indent"`
	Force   bool              `koanf:"force"`
	Verbose bool              `koanf:"verbose"`
	Color   string            `koanf:"color"`
	Vars    map[string]string `koanf:"vars"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `koanf:"-"`
}

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
