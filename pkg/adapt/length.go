package adapt

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/screenfit/pkg/errors"
)

// Length is a configured design extent. The zero value means "auto": the
// extent is derived from the viewport on every pass.
type Length float64

// Auto is the automatic design extent.
const Auto Length = 0

// IsAuto reports whether l is derived from the viewport.
func (l Length) IsAuto() bool { return l == Auto }

func (l Length) String() string {
	if l.IsAuto() {
		return "auto"
	}
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}

// Validate rejects negative and non-finite lengths.
func (l Length) Validate(name string) error {
	if l.IsAuto() {
		return nil
	}
	return errors.ValidateDimension(errors.ErrCodeInvalidDesignSize, name, float64(l))
}

// ParseLength parses "auto" (case-insensitive, or empty) or a number.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Auto, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidDesignSize, "invalid design length %q (want a number or \"auto\")", s)
	}
	var l Length
	if err := l.set(v); err != nil {
		return 0, err
	}
	return l, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Length) UnmarshalText(b []byte) error {
	v, err := ParseLength(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *Length) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return l.UnmarshalText([]byte(v))
	case int64:
		return l.set(float64(v))
	case float64:
		return l.set(v)
	}
	return errors.New(errors.ErrCodeInvalidDesignSize, "invalid design length %v", v)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Length) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.New(errors.ErrCodeInvalidDesignSize, "line %d: design length must be a scalar", n.Line)
	}
	return l.UnmarshalText([]byte(n.Value))
}

func (l *Length) set(v float64) error {
	if v == 0 {
		return errors.New(errors.ErrCodeInvalidDesignSize, "design length must be positive or \"auto\", got 0")
	}
	if err := Length(v).Validate("design length"); err != nil {
		return err
	}
	*l = Length(v)
	return nil
}
