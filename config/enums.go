package config

import (
	"fmt"
	"strings"
)

// Specification of requested parse command output.
type OutputFmt int

const (
	OutputFmtText OutputFmt = iota
	OutputFmtYAML
)

func (o OutputFmt) String() string {
	switch o {
	case OutputFmtText:
		return "text"
	case OutputFmtYAML:
		return "yaml"
	default:
		// this should never happen
		panic("unsupported output format requested")
	}
}

// OutputFmtNames returns all supported output format names.
func OutputFmtNames() []string {
	return []string{"text", "yaml"}
}

// ParseOutputFmt converts a format name to OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return OutputFmtText, nil
	case "yaml":
		return OutputFmtYAML, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (supported formats: %s)", name, strings.Join(OutputFmtNames(), ", "))
	}
}

// MarshalText implements encoding.TextMarshaler so the format is readable in
// YAML dumps.
func (o OutputFmt) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OutputFmt) UnmarshalText(text []byte) error {
	v, err := ParseOutputFmt(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
