// internal/console/builder.go
package console

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	cfg "github.com/tamzrod/greenhouse-settings/internal/config"
)

// Build opens the console described by the config.
// Config must already be validated and normalized.
func Build(c cfg.ConsoleConfig, log *zap.Logger) (Port, func() error, error) {
	switch c.Kind {
	case cfg.ConsoleSerial:
		s, err := OpenSerial(SerialConfig{
			Address:     c.Address,
			BaudRate:    c.BaudRate,
			ReadTimeout: time.Duration(c.ReadTimeoutMs) * time.Millisecond,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case cfg.ConsoleStdio:
		// No-op closer: stdin stays open for the process lifetime.
		return NewStream(os.Stdin, os.Stdout), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("console: unsupported kind %q", c.Kind)
	}
}
