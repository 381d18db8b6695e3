// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/greenhouse-settings/internal/record"
)

// registersPerRecord is the holding-register footprint of one record.
const registersPerRecord = (record.Size + 1) / 2

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	// ------------------------------------------------------------
	// CONSOLE
	// ------------------------------------------------------------

	c := cfg.Console
	switch c.Kind {
	case "", ConsoleSerial:
		if c.Address == "" {
			return errors.New("console: address is required for a serial console")
		}
		if c.BaudRate < 0 {
			return fmt.Errorf("console: baud_rate %d must be positive", c.BaudRate)
		}
	case ConsoleStdio:
	default:
		return fmt.Errorf("console: unknown kind %q", c.Kind)
	}

	if c.ReadTimeoutMs < 0 {
		return fmt.Errorf("console: read_timeout_ms %d must not be negative", c.ReadTimeoutMs)
	}
	if c.PromptTimeoutMs < 0 {
		return fmt.Errorf("console: prompt_timeout_ms %d must not be negative", c.PromptTimeoutMs)
	}

	// ------------------------------------------------------------
	// BACKING STORE
	// ------------------------------------------------------------

	s := cfg.Store
	switch s.Kind {
	case "", StoreFile:
		if s.Path == "" {
			return errors.New("store: path is required for a file store")
		}
	case StoreMemory:
	case StoreModbus:
		if err := validateModbus(s.Modbus); err != nil {
			return err
		}
	default:
		return fmt.Errorf("store: unknown kind %q", s.Kind)
	}

	// ------------------------------------------------------------
	// LOGGING
	// ------------------------------------------------------------

	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", cfg.Logging.Level)
	}

	return nil
}

func validateModbus(m ModbusConfig) error {
	switch m.Transport {
	case "", TransportTCP, TransportRTU:
	default:
		return fmt.Errorf("store modbus: unknown transport %q", m.Transport)
	}

	if m.Endpoint == "" {
		return errors.New("store modbus: endpoint required")
	}
	if m.TimeoutMs < 0 {
		return fmt.Errorf("store modbus: timeout_ms %d must not be negative", m.TimeoutMs)
	}

	// Region must fit inside the 16-bit register address space.
	end := int(m.Address) + registersPerRecord - 1
	if end > 0xFFFF {
		return fmt.Errorf(
			"store modbus: region %d-%d exceeds register address space",
			m.Address,
			end,
		)
	}

	return nil
}
