// Command wallkick-sim drives the movement controller through a level with a
// scripted input timeline and prints what happened. It needs no window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/automoto/wallkick/assets/levels"
	"github.com/automoto/wallkick/config/tuning"
	"github.com/automoto/wallkick/shared/controller"
	"github.com/automoto/wallkick/shared/leveldata"
	"github.com/automoto/wallkick/sim"
)

func main() {
	levelName := flag.String("level", levels.Practice, "TMX file, embedded level name, or \"practice\"")
	scriptPath := flag.String("script", "", "YAML input script (required)")
	tuningPath := flag.String("tuning", "", "YAML tuning override")
	verbose := flag.Bool("v", false, "Log every state transition")
	realtime := flag.Bool("realtime", false, "Step on a wall-clock ticker instead of as fast as possible")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level, err := loadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	script, err := sim.LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	t := controller.DefaultTuning()
	if *tuningPath != "" {
		t, err = tuning.LoadFile(*tuningPath)
		if errors.Is(err, tuning.ErrUnreadable) {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	opts := sim.DefaultOptions()
	opts.Verbose = *verbose
	s, err := sim.New(level, t, script, opts)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Simulating %s for %v", level.Name, script.Duration)
	var summary sim.Summary
	if *realtime {
		summary = s.RunRealtime(ctx)
	} else {
		summary = s.Run(ctx)
	}
	fmt.Print(summary)
}

// loadLevel reads a TMX file from disk when name points at one, otherwise it
// looks the name up among the embedded levels.
func loadLevel(name string) (*leveldata.Level, error) {
	if strings.HasSuffix(name, ".tmx") {
		if _, err := os.Stat(name); err == nil {
			return leveldata.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
		}
	}
	return levels.ByName(name)
}
