package systems

import (
	"log"

	cfg "github.com/automoto/wallkick/config"
	"github.com/automoto/wallkick/config/tuning"
	"github.com/yohamta/donburi/ecs"
)

var tuningWatcher *tuning.Watcher

// WatchTuning hot-reloads the tuning file at path for the rest of the run.
func WatchTuning(path string) error {
	w, err := tuning.Watch(path)
	if err != nil {
		return err
	}
	tuningWatcher = w
	log.Printf("Watching %s for tuning changes", path)
	return nil
}

// CloseTuningWatcher stops hot reloading, if it was started.
func CloseTuningWatcher() {
	if tuningWatcher != nil {
		_ = tuningWatcher.Close()
		tuningWatcher = nil
	}
}

// UpdateTuningReload picks up a reloaded tuning file. The running character
// keeps its tuning; the next one spawned uses the new values.
func UpdateTuningReload(ecs *ecs.ECS) {
	if tuningWatcher == nil {
		return
	}
	if err := tuningWatcher.PollError(); err != nil {
		log.Printf("Warning: tuning reload: %v", err)
	}
	if t, ok := tuningWatcher.Poll(); ok {
		cfg.Controller = t
		log.Println("Tuning reloaded, respawn to apply")
	}
}
