// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultBaudRate      = 115200
	DefaultReadTimeoutMs = 1
	DefaultModbusTimeout = 1000
	DefaultRTUBaudRate   = 9600
	DefaultLogLevel      = "info"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// ---- console ----

	c := &cfg.Console
	if c.Kind == "" {
		c.Kind = ConsoleSerial
	}
	if c.BaudRate == 0 {
		c.BaudRate = DefaultBaudRate
	}
	if c.ReadTimeoutMs == 0 {
		c.ReadTimeoutMs = DefaultReadTimeoutMs
	}

	// ---- store ----

	s := &cfg.Store
	if s.Kind == "" {
		s.Kind = StoreFile
	}
	if s.Kind == StoreModbus {
		m := &s.Modbus
		if m.Transport == "" {
			m.Transport = TransportTCP
		}
		if m.TimeoutMs == 0 {
			m.TimeoutMs = DefaultModbusTimeout
		}
		if m.Transport == TransportRTU && m.BaudRate == 0 {
			m.BaudRate = DefaultRTUBaudRate
		}
	}

	// ---- logging ----

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
