package config

import "github.com/spf13/viper"

// setDefaults sets the configuration defaults before any file or
// environment override is applied.
func setDefaults(v *viper.Viper) {
	v.SetDefault("definitions_file", "")
	v.SetDefault("output_case", "upper")
	v.SetDefault("for_signing", true)
}
