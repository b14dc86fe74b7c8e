// Package config loads the daemon's bindings.toml and turns it into a map
// from recognized Gesture to the Action to run. The grammar is the one
// libgestures' original author used: "swipe [num_fingers] direction".
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"ffgestures/internal/geom"
)

// Gesture is a recognized, actionable gesture: an n-fingered swipe in one
// of the four cardinal directions. It is the map key bindings.toml is
// parsed into, and the type cmd/ffgestures registers compound.DirectionSwipe
// builders against.
type Gesture struct {
	NumFingers uint8
	Direction  geom.Direction
}

func (g Gesture) String() string {
	return fmt.Sprintf("swipe %d %s", g.NumFingers, g.Direction)
}

// Action is what runs when a Gesture fires.
type Action struct {
	Command string
	Args    []string
}

// Run launches the configured command directly (not through a shell),
// inheriting the daemon's environment so things like XDG_RUNTIME_DIR reach
// the child. It does not wait for the child to exit.
func (a Action) Run() error {
	cmd := exec.Command(a.Command, a.Args...)
	cmd.Env = os.Environ()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to execute command %q: %w", a.Command, err)
	}
	go cmd.Wait()
	return nil
}

// Config is the daemon's fully parsed configuration: one Action per bound
// Gesture.
type Config struct {
	Bindings map[Gesture]Action
}

// binding is the TOML shape of a single entry in bindings.toml:
//
//	[[bindings]]
//	gesture = "swipe 3 left"
//	command = "xdotool"
//	args = ["key", "alt+Left"]
type binding struct {
	Gesture string   `toml:"gesture"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

type fileFormat struct {
	Bindings []binding `toml:"bindings"`
}

// defaultNumFingers is assumed when a gesture string omits the finger
// count, e.g. "swipe left" means "swipe 3 left".
const defaultNumFingers = 3

// parseSwipe parses the part of a gesture string after the leading "swipe"
// keyword: an optional finger count followed by a direction word.
func parseSwipe(fields []string) (Gesture, error) {
	numFingers := uint8(defaultNumFingers)
	if len(fields) > 0 {
		if n, err := strconv.ParseUint(fields[0], 10, 8); err == nil {
			numFingers = uint8(n)
			fields = fields[1:]
		}
	}

	if len(fields) != 1 {
		return Gesture{}, fmt.Errorf("expected a direction, got %q", strings.Join(fields, " "))
	}

	var dir geom.Direction
	switch fields[0] {
	case "up":
		dir = geom.Up
	case "down":
		dir = geom.Down
	case "left":
		dir = geom.Left
	case "right":
		dir = geom.Right
	default:
		return Gesture{}, fmt.Errorf("unknown direction %q", fields[0])
	}

	return Gesture{NumFingers: numFingers, Direction: dir}, nil
}

// parseGesture parses one gesture string, e.g. "swipe 4 up" or
// "swipe right".
func parseGesture(s string) (Gesture, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Gesture{}, fmt.Errorf("empty gesture string")
	}
	switch fields[0] {
	case "swipe":
		return parseSwipe(fields[1:])
	default:
		return Gesture{}, fmt.Errorf("unable to parse gesture %q", s)
	}
}

// toConfig resolves the raw TOML bindings into a Config, rejecting any
// gesture string that doesn't parse and any gesture bound twice.
func (f fileFormat) toConfig() (*Config, error) {
	cfg := &Config{Bindings: make(map[Gesture]Action, len(f.Bindings))}

	for _, b := range f.Bindings {
		gesture, err := parseGesture(b.Gesture)
		if err != nil {
			return nil, fmt.Errorf("error parsing gesture in config file: %w", err)
		}
		if _, dup := cfg.Bindings[gesture]; dup {
			return nil, fmt.Errorf("duplicate binding for gesture %q", gesture)
		}
		cfg.Bindings[gesture] = Action{Command: b.Command, Args: b.Args}
	}

	return cfg, nil
}

// Path returns the fixed location bindings.toml is read from:
// $XDG_CONFIG_HOME/ffgestures/bindings.toml.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "ffgestures", "bindings.toml")
}

// Load reads and parses bindings.toml from its fixed XDG location. Any
// failure here — a missing file, invalid TOML, an unparsable gesture
// string, or a duplicate binding — is fatal at startup, per the daemon's
// error handling policy: the caller is expected to log it and exit.
func Load() (*Config, error) {
	return loadFrom(Path())
}

// loadFrom is Load's implementation, parameterized on the file path so
// tests can exercise it against a temp file instead of the fixed XDG
// location.
func loadFrom(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open config file %s: %w", path, err)
	}

	var parsed fileFormat
	if err := toml.Unmarshal(contents, &parsed); err != nil {
		return nil, fmt.Errorf("unable to parse config file %s: %w", path, err)
	}

	return parsed.toConfig()
}
