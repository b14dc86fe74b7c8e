// Package logging provides the single leveled logger the daemon's outer
// layers write to: internal/evdev (driver anomalies) and cmd/ffgestures
// (startup problems, which internal/config returns as errors). The
// recognition core never imports this package.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shape the outer layers log through; *logrus.Logger
// satisfies it directly; tests can substitute a fake.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// New builds the daemon's logger: human-readable, timestamped, writing to
// stderr so stdout stays free for any future machine-readable output.
// debug selects whether Debugf lines are actually emitted, mirroring the
// teacher's Debug config flag.
func New(debug bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.Level = logrus.InfoLevel
	if debug {
		log.Level = logrus.DebugLevel
	}
	return log
}
