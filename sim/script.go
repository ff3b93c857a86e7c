package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/automoto/wallkick/shared/controller"
	"gopkg.in/yaml.v3"
)

// Script is a timeline of held keys for a headless run. Without a
// duration it runs until shortly after the last release.
//
//	duration: 4s
//	inputs:
//	  - {key: right, from: 0s, to: 3s}
//	  - {key: jump, from: 1s, to: 1.3s}
type Script struct {
	Duration time.Duration `yaml:"duration"`
	Inputs   []Hold        `yaml:"inputs"`
}

// Hold keeps Key down during [From, To).
type Hold struct {
	Key  string        `yaml:"key"`
	From time.Duration `yaml:"from"`
	To   time.Duration `yaml:"to"`

	key controller.Key
}

// settle is how long an inferred run continues past the last release, so
// the release edge and what follows it are simulated.
const settle = 200 * time.Millisecond

var keyNames = map[string]controller.Key{
	"left":  controller.KeyMoveLeft,
	"right": controller.KeyMoveRight,
	"jump":  controller.KeyJump,
	"slide": controller.KeySlide,
}

// ParseScript decodes and checks a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Script) resolve() error {
	var errs []error
	var last time.Duration
	for i := range s.Inputs {
		h := &s.Inputs[i]
		k, ok := keyNames[h.Key]
		if !ok {
			errs = append(errs, fmt.Errorf("input %d: unknown key %q", i, h.Key))
			continue
		}
		h.key = k
		if h.From < 0 || h.To <= h.From {
			errs = append(errs, fmt.Errorf("input %d: empty interval [%v, %v)", i, h.From, h.To))
		}
		last = max(last, h.To)
	}
	if s.Duration <= 0 && last > 0 {
		s.Duration = last + settle
	}
	if s.Duration <= 0 {
		errs = append(errs, errors.New("script has no duration"))
	}
	return errors.Join(errs...)
}

// held reports whether k is down at t.
func (s *Script) held(k controller.Key, t time.Duration) bool {
	for _, h := range s.Inputs {
		if h.key == k && t >= h.From && t < h.To {
			return true
		}
	}
	return false
}

// scriptInput samples a script once per render step and derives edges by
// comparing with the previous sample.
type scriptInput struct {
	script    *Script
	cur, prev [4]bool
}

func (in *scriptInput) sample(t time.Duration) {
	in.prev = in.cur
	for k := range in.cur {
		in.cur[k] = in.script.held(controller.Key(k), t)
	}
}

func (in *scriptInput) Held(k controller.Key) bool {
	return int(k) < len(in.cur) && in.cur[k]
}

func (in *scriptInput) DownEdge(k controller.Key) bool {
	return int(k) < len(in.cur) && in.cur[k] && !in.prev[k]
}

func (in *scriptInput) UpEdge(k controller.Key) bool {
	return int(k) < len(in.cur) && !in.cur[k] && in.prev[k]
}
