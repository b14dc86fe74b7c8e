// Command ffgestures watches a touchpad for multi-finger swipes and runs
// whatever command bindings.toml binds to each one.
//
// It takes no flags: the config path is fixed at
// $XDG_CONFIG_HOME/ffgestures/bindings.toml, and the touchpad device is
// auto-detected by name. Set FFGESTURES_DEVICE to override the latter.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"ffgestures/internal/compound"
	"ffgestures/internal/config"
	"ffgestures/internal/evdev"
	"ffgestures/internal/geom"
	"ffgestures/internal/logging"
	"ffgestures/internal/manager"
	"ffgestures/internal/recognizer"
)

const defaultDeviceKeyword = "touchpad"

func main() {
	log := logging.New(os.Getenv("FFGESTURES_DEBUG") != "")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}
	log.Infof("loaded %d binding(s) from %s", len(cfg.Bindings), config.Path())

	devicePath := os.Getenv("FFGESTURES_DEVICE")
	if devicePath == "" {
		devicePath, err = evdev.Find(defaultDeviceKeyword)
		if err != nil {
			log.Fatalf("finding touchpad device: %v", err)
		}
	}

	dev, err := evdev.Open(devicePath, log)
	if err != nil {
		log.Fatalf("opening %s: %v", devicePath, err)
	}
	defer dev.Close()
	log.Infof("reading touch events from %s", devicePath)

	man := buildManager(cfg)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	run(log, dev, man, cfg, sigs)
}

// buildManager registers one compound.DirectionSwipe(n) per distinct
// finger count named in the config's bindings, each mapped to the
// config.Gesture it reports.
func buildManager(cfg *config.Config) *manager.Manager[config.Gesture] {
	fingerCounts := make(map[uint8]bool)
	for g := range cfg.Bindings {
		fingerCounts[g.NumFingers] = true
	}

	man := manager.New[config.Gesture]()
	for n := range fingerCounts {
		n := n
		swipe := compound.DirectionSwipe(int(n))
		gesture := recognizer.MapOutcome(swipe, func(dir geom.Direction) config.Gesture {
			return config.Gesture{NumFingers: n, Direction: dir}
		})
		man.Push(gesture)
	}
	return man
}

// run pumps touch events from dev into man until a signal arrives,
// running whichever action each recognized gesture is bound to.
func run(log logging.Logger, dev *evdev.Device, man *manager.Manager[config.Gesture], cfg *config.Config, sigs chan os.Signal) {
	done := make(chan struct{})
	go func() {
		<-sigs
		log.Infof("terminating...")
		close(done)
	}()

	for {
		select {
		case <-done:
			return
		default:
		}

		touchEvents, err := dev.Read()
		if err != nil {
			log.Errorf("reading touch events: %v", err)
			return
		}

		for _, ev := range touchEvents {
			gesture, ok := man.Update(ev)
			if !ok {
				continue
			}
			log.Infof("detected gesture: %s", gesture)
			action, bound := cfg.Bindings[gesture]
			if !bound {
				continue
			}
			if err := action.Run(); err != nil {
				log.Errorf("%v", err)
			}
		}
	}
}
