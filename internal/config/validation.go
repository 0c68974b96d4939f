package config

import "fmt"

// ErrInvalidOutputCase is returned when OutputCase is not "upper" or "lower".
var ErrInvalidOutputCase = fmt.Errorf("output_case must be %q or %q", "upper", "lower")

// ValidateConfig checks that the loaded configuration holds legal values.
func ValidateConfig(config *Config) error {
	switch config.OutputCase {
	case "upper", "lower":
	default:
		return ErrInvalidOutputCase
	}
	return nil
}
