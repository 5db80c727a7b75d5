package config

import (
	"fmt"
	"time"
)

// levels follow zapcore.Level
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("invalid LOG_LEVEL %d, want a value between %d and %d", c.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("LOG_TIME_FORMAT must not be empty")
	}
	// reference time must survive a format/parse round trip
	if _, err := time.Parse(c.TimeFormat, time.Unix(0, 0).UTC().Format(c.TimeFormat)); err != nil {
		return fmt.Errorf("invalid LOG_TIME_FORMAT %q: %w", c.TimeFormat, err)
	}
	return nil
}
