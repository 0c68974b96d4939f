// Package config loads the xrpld CLI's configuration: the small set of
// knobs the encode/decode commands read before dispatching into the binary
// codec. It mirrors the teacher's layered Viper setup, scaled down to a
// side-effect-free library wrapper instead of a full node.
package config

// Config is the complete xrpld CLI configuration.
type Config struct {
	// DefinitionsFile overrides the built-in definitions.json catalog with
	// one loaded from disk. Empty means use the embedded catalog.
	DefinitionsFile string `toml:"definitions_file" mapstructure:"definitions_file"`

	// OutputCase controls the hex casing SerializeTx output is printed in by
	// the CLI; the codec itself always returns uppercase.
	OutputCase string `toml:"output_case" mapstructure:"output_case"`

	// ForSigning is the default for the --for-signing flag when a command
	// does not override it.
	ForSigning bool `toml:"for_signing" mapstructure:"for_signing"`

	configPath string
}

// GetConfigPath returns the file the configuration was loaded from, if any.
func (c *Config) GetConfigPath() string {
	return c.configPath
}
