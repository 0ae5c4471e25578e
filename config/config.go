// Package config loads playnashville configuration from nashville.toml and
// NASHVILLE_* environment variables, with sensible defaults for running with
// no config file at all.
package config

// Config is the root configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Annotate AnnotateConfig `mapstructure:"annotate"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the annotation web server
type ServerConfig struct {
	Port               int      `mapstructure:"port"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`       // WebSocket origin allowlist; ["*"] disables the check
	RateLimitPerSecond float64  `mapstructure:"rate_limit_per_second"` // sustained /api/process rate per server
	RateBurst          int      `mapstructure:"rate_burst"`
}

// AnnotateConfig configures annotation defaults shared by the CLI and server
type AnnotateConfig struct {
	// DefaultMode restricts auto-detection to "major" or "minor";
	// empty means both modes compete
	DefaultMode string `mapstructure:"default_mode"`
	// DefaultEncoding is the charset assumed for --input files
	DefaultEncoding string `mapstructure:"default_encoding"`
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// Default server port. The original deployment served on 5000 behind a
// reverse proxy; keep it for drop-in compatibility.
const DefaultServerPort = 5000
