package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. Branch output goes to stdout,
// so logs default to stderr and stay out of pipes.
func Setup(level string, out io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: lvl < log.DebugLevel,
		FullTimestamp:    true,
	})
	return nil
}
