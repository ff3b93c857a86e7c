package tuning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/wallkick/shared/controller"
)

func TestParsePartialOverride(t *testing.T) {
	doc := []byte(`
move_force: 20
slide_duration: 250ms
non_clingable_surface_tag: ice
ground_check_offset:
  x: 0
  y: 0.1
`)
	got, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := controller.DefaultTuning()
	want.MoveForce = 20
	want.SlideDuration = 250 * time.Millisecond
	want.NonClingableSurfaceTag = "ice"
	want.GroundCheckOffset.Y = 0.1
	if got != want {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	got, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != controller.DefaultTuning() {
		t.Errorf("empty document should give defaults, got %+v", got)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	got, err := Parse([]byte("move_forse: 3\n"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("want ErrUnreadable, got %v", err)
	}
	if got != controller.DefaultTuning() {
		t.Errorf("unreadable document should give defaults")
	}
}

func TestParseReportsCorrections(t *testing.T) {
	got, err := Parse([]byte("wall_cling_factor: 1.5\nmax_velocity: -2\n"))
	if err == nil {
		t.Fatal("expected correction errors")
	}
	if errors.Is(err, ErrUnreadable) {
		t.Fatalf("corrections are not a read failure: %v", err)
	}

	var invalid *controller.InvalidNumericConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("want *InvalidNumericConfigError in %v", err)
	}
	if got.WallClingFactor >= 1 {
		t.Errorf("WallClingFactor = %v, want < 1", got.WallClingFactor)
	}
	if got.MaxVelocity != 0 {
		t.Errorf("MaxVelocity = %v, want 0", got.MaxVelocity)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("jump_velocity: 14\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.JumpVelocity != 14 {
		t.Errorf("JumpVelocity = %v, want 14", got.JumpVelocity)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("missing file: want ErrUnreadable, got %v", err)
	}
}
