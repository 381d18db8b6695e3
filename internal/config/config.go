// internal/config/config.go
package config

type Config struct {
	Console ConsoleConfig `yaml:"console"`
	Store   StoreConfig   `yaml:"store"`
	Debug   bool          `yaml:"debug"` // dump the record on load and before every commit
	Logging LoggingConfig `yaml:"logging"`
}

// ---- CONSOLE ----

const (
	ConsoleSerial = "serial"
	ConsoleStdio  = "stdio"
)

type ConsoleConfig struct {
	Kind            string `yaml:"kind"` // serial | stdio
	Address         string `yaml:"address"`
	BaudRate        int    `yaml:"baud_rate"`
	ReadTimeoutMs   int    `yaml:"read_timeout_ms"`
	PromptTimeoutMs int    `yaml:"prompt_timeout_ms"` // 0 = wait forever
}

// ---- BACKING STORE ----

const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreModbus = "modbus"
)

type StoreConfig struct {
	Kind   string       `yaml:"kind"` // file | memory | modbus
	Path   string       `yaml:"path"`
	Modbus ModbusConfig `yaml:"modbus"`
}

const (
	TransportTCP = "tcp"
	TransportRTU = "rtu"
)

type ModbusConfig struct {
	Transport string `yaml:"transport"` // tcp | rtu
	Endpoint  string `yaml:"endpoint"`  // host:port or serial device
	UnitID    uint8  `yaml:"unit_id"`
	Address   uint16 `yaml:"address"` // first holding register of the region
	TimeoutMs int    `yaml:"timeout_ms"`
	BaudRate  int    `yaml:"baud_rate"` // rtu only
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug | info | warn | error
	Development bool   `yaml:"development"`
}
