// internal/nvstore/builder.go
package nvstore

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/greenhouse-settings/internal/config"
	nmodbus "github.com/tamzrod/greenhouse-settings/internal/nvstore/modbus"
)

// Build constructs the Backing described by the store config.
// Config must already be validated and normalized.
// The returned closer releases transport resources, if any.
func Build(s cfg.StoreConfig) (Backing, func() error, error) {
	noop := func() error { return nil }

	switch s.Kind {
	case cfg.StoreFile:
		return NewFile(s.Path), noop, nil

	case cfg.StoreMemory:
		return NewMemory(nil), noop, nil

	case cfg.StoreModbus:
		r, err := nmodbus.New(nmodbus.Config{
			Transport: s.Modbus.Transport,
			Endpoint:  s.Modbus.Endpoint,
			UnitID:    s.Modbus.UnitID,
			Address:   s.Modbus.Address,
			Timeout:   time.Duration(s.Modbus.TimeoutMs) * time.Millisecond,
			BaudRate:  s.Modbus.BaudRate,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil

	default:
		return nil, nil, fmt.Errorf("nvstore: unsupported store kind %q", s.Kind)
	}
}
