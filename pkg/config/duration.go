package config

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration decoded from YAML. It accepts Go duration
// strings ("150ms", "0.1s") and bare numbers, which are seconds as in the
// widgets' delay inputs.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	if seconds, err := strconv.ParseFloat(value.Value, 64); err == nil {
		if seconds < 0 {
			return fmt.Errorf("line %d: negative duration %q", value.Line, value.Value)
		}
		*d = Duration(time.Duration(seconds * float64(time.Second)))
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", value.Line, value.Value)
	}
	if parsed < 0 {
		return fmt.Errorf("line %d: negative duration %q", value.Line, value.Value)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
