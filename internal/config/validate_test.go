// internal/config/validate_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// helper to build a minimal valid config quickly
func base() *Config {
	return &Config{
		Console: ConsoleConfig{Kind: ConsoleStdio},
		Store:   StoreConfig{Kind: StoreMemory},
	}
}

// ---- tests ----

func TestValidate_MinimalOK(t *testing.T) {
	require.NoError(t, Validate(base()))
}

func TestValidate_SerialRequiresAddress(t *testing.T) {
	cfg := base()
	cfg.Console = ConsoleConfig{Kind: ConsoleSerial}
	require.Error(t, Validate(cfg))

	cfg.Console.Address = "/dev/ttyUSB0"
	require.NoError(t, Validate(cfg))
}

func TestValidate_DefaultKindsNeedTheirFields(t *testing.T) {
	cfg := &Config{}
	require.Error(t, Validate(cfg), "empty console kind means serial")

	cfg.Console.Address = "/dev/ttyS0"
	require.Error(t, Validate(cfg), "empty store kind means file")

	cfg.Store.Path = "/tmp/eeprom.bin"
	require.NoError(t, Validate(cfg))
}

func TestValidate_UnknownKinds(t *testing.T) {
	cfg := base()
	cfg.Console.Kind = "telnet"
	require.Error(t, Validate(cfg))

	cfg = base()
	cfg.Store.Kind = "sdcard"
	require.Error(t, Validate(cfg))

	cfg = base()
	cfg.Logging.Level = "chatty"
	require.Error(t, Validate(cfg))
}

func TestValidate_NegativeTimeouts(t *testing.T) {
	cfg := base()
	cfg.Console.PromptTimeoutMs = -1
	require.Error(t, Validate(cfg))

	cfg = base()
	cfg.Console.ReadTimeoutMs = -1
	require.Error(t, Validate(cfg))
}

func TestValidate_ModbusRegion(t *testing.T) {
	cfg := base()
	cfg.Store = StoreConfig{
		Kind: StoreModbus,
		Modbus: ModbusConfig{
			Endpoint: "127.0.0.1:502",
			Address:  100,
		},
	}
	require.NoError(t, Validate(cfg))

	// last register = address + 74 - 1
	cfg.Store.Modbus.Address = 0xFFFF - registersPerRecord + 1
	require.NoError(t, Validate(cfg))

	cfg.Store.Modbus.Address++
	require.Error(t, Validate(cfg))
}

func TestValidate_ModbusNeedsEndpoint(t *testing.T) {
	cfg := base()
	cfg.Store = StoreConfig{Kind: StoreModbus}
	require.Error(t, Validate(cfg))

	cfg.Store.Modbus = ModbusConfig{Transport: "udp", Endpoint: "x"}
	require.Error(t, Validate(cfg))
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := &Config{
		Console: ConsoleConfig{Address: "/dev/ttyS0"},
		Store:   StoreConfig{Path: "/tmp/e.bin"},
	}
	before := *cfg
	require.NoError(t, Validate(cfg))
	require.Equal(t, before, *cfg)
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{
		Console: ConsoleConfig{Address: "/dev/ttyS0"},
		Store: StoreConfig{
			Kind:   StoreModbus,
			Modbus: ModbusConfig{Transport: TransportRTU, Endpoint: "/dev/ttyS1"},
		},
	}
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	require.Equal(t, ConsoleSerial, cfg.Console.Kind)
	require.Equal(t, DefaultBaudRate, cfg.Console.BaudRate)
	require.Equal(t, DefaultReadTimeoutMs, cfg.Console.ReadTimeoutMs)
	require.Equal(t, 0, cfg.Console.PromptTimeoutMs)
	require.Equal(t, DefaultModbusTimeout, cfg.Store.Modbus.TimeoutMs)
	require.Equal(t, DefaultRTUBaudRate, cfg.Store.Modbus.BaudRate)
	require.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestParse_YAML(t *testing.T) {
	raw := []byte(`
console:
  kind: serial
  address: /dev/ttyUSB0
  baud_rate: 57600
  prompt_timeout_ms: 30000
store:
  kind: modbus
  modbus:
    transport: tcp
    endpoint: 10.0.0.5:502
    unit_id: 3
    address: 200
debug: true
logging:
  level: debug
`)
	cfg, err := Parse(raw)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	require.Equal(t, "/dev/ttyUSB0", cfg.Console.Address)
	require.Equal(t, 57600, cfg.Console.BaudRate)
	require.Equal(t, 30000, cfg.Console.PromptTimeoutMs)
	require.Equal(t, StoreModbus, cfg.Store.Kind)
	require.Equal(t, uint8(3), cfg.Store.Modbus.UnitID)
	require.Equal(t, uint16(200), cfg.Store.Modbus.Address)
	require.True(t, cfg.Debug)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("console:\n  speed: 9600\n"))
	require.Error(t, err)
}
