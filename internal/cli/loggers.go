package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a logrus logger writing to w. level is a logrus level
// name; verbose forces debug.
func newLogger(w io.Writer, level string, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	l.SetLevel(lvl)
	return l
}
