package tuning

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/wallkick/shared/controller"
	"gopkg.in/yaml.v3"
)

// ErrUnreadable marks a tuning document that could not be read or
// decoded. The accompanying tuning is the default set.
var ErrUnreadable = errors.New("tuning unreadable")

// Parse decodes a (possibly partial) YAML document over the default
// tuning and validates the result. Unknown keys are rejected. The returned
// tuning is always usable; validation corrections come back as the error.
func Parse(data []byte) (controller.Tuning, error) {
	t := controller.DefaultTuning()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return controller.DefaultTuning(), fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	return t.Validate()
}

// LoadFile reads and parses a tuning file, see Parse.
func LoadFile(path string) (controller.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return controller.DefaultTuning(), fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	t, err := Parse(data)
	if err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}
