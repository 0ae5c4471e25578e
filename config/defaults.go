package config

import "github.com/spf13/viper"

// SetDefaults registers default values on a Viper instance. Called before
// any config file is merged so that a missing file still yields a usable
// configuration.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_limit_per_second", 10.0)
	v.SetDefault("server.rate_burst", 20)

	v.SetDefault("annotate.default_mode", "")
	v.SetDefault("annotate.default_encoding", "utf-8")

	v.SetDefault("log.json", false)
}
