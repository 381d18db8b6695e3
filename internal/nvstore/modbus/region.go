// internal/nvstore/modbus/region.go
package modbus

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// Protocol limits for one request (Modbus application protocol v1.1b3).
const (
	maxReadRegisters  = 125 // FC 3
	maxWriteRegisters = 123 // FC 16
)

// erasedByte pads an odd-sized image in its last register.
const erasedByte byte = 0xFF

// registerClient is the subset of modbus.Client the region needs.
type registerClient interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// Region is a non-volatile record kept in a block of holding registers
// on a remote device. Two bytes per register, big-endian.
// Requests are serialized.
type Region struct {
	mu     sync.Mutex
	closer io.Closer
	client registerClient
	base   uint16
	size   int
}

type Config struct {
	Transport string // tcp | rtu
	Endpoint  string // host:port, or serial device for rtu
	UnitID    uint8
	Address   uint16 // first register of the region
	Timeout   time.Duration
	BaudRate  int // rtu only
}

// New connects to the device that holds the region.
func New(cfg Config) (*Region, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus region: endpoint required")
	}

	switch cfg.Transport {
	case "", "tcp":
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.SlaveId = cfg.UnitID
		h.Timeout = cfg.Timeout
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus region: connect %s: %w", cfg.Endpoint, err)
		}
		return newRegion(modbus.NewClient(h), h, cfg.Address), nil

	case "rtu":
		h := modbus.NewRTUClientHandler(cfg.Endpoint)
		h.BaudRate = cfg.BaudRate
		h.DataBits = 8
		h.Parity = "N"
		h.StopBits = 1
		h.SlaveId = cfg.UnitID
		h.Timeout = cfg.Timeout
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus region: open %s: %w", cfg.Endpoint, err)
		}
		return newRegion(modbus.NewClient(h), h, cfg.Address), nil

	default:
		return nil, fmt.Errorf("modbus region: unsupported transport %q", cfg.Transport)
	}
}

func newRegion(client registerClient, closer io.Closer, base uint16) *Region {
	return &Region{client: client, closer: closer, base: base}
}

// Close releases the transport.
func (r *Region) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Begin reads size bytes from the region, in as many FC3 requests as needed.
func (r *Region) Begin(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("modbus region: invalid size %d", size)
	}
	qty := registersFor(size)
	if int(r.base)+qty-1 > 0xFFFF {
		return nil, fmt.Errorf("modbus region: %d registers at %d exceed address space", qty, r.base)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	img := make([]byte, 0, qty*2)
	for off := 0; off < qty; off += maxReadRegisters {
		n := min(maxReadRegisters, qty-off)
		addr := r.base + uint16(off)

		data, err := r.client.ReadHoldingRegisters(addr, uint16(n))
		if err != nil {
			return nil, fmt.Errorf("modbus region: read addr=%d qty=%d: %w", addr, n, err)
		}
		if len(data) != n*2 {
			return nil, fmt.Errorf("modbus region: short read addr=%d: got=%d bytes want=%d", addr, len(data), n*2)
		}
		img = append(img, data...)
	}

	r.size = size
	return img[:size], nil
}

// Commit writes the full image back with FC16 requests.
func (r *Region) Commit(image []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size == 0 {
		return errors.New("modbus region: commit before begin")
	}
	if len(image) != r.size {
		return fmt.Errorf("modbus region: image size mismatch: got=%d want=%d", len(image), r.size)
	}

	payload := packImage(image)
	qty := len(payload) / 2

	for off := 0; off < qty; off += maxWriteRegisters {
		n := min(maxWriteRegisters, qty-off)
		addr := r.base + uint16(off)

		chunk := payload[off*2 : (off+n)*2]
		if _, err := r.client.WriteMultipleRegisters(addr, uint16(n), chunk); err != nil {
			return fmt.Errorf("modbus region: write addr=%d qty=%d: %w", addr, n, err)
		}
	}

	return nil
}

// ---- helpers (pure geometry) ----

func registersFor(size int) int {
	return (size + 1) / 2
}

// packImage copies image into register order, padding an odd tail.
func packImage(image []byte) []byte {
	out := make([]byte, registersFor(len(image))*2)
	copy(out, image)
	if len(image)%2 != 0 {
		out[len(out)-1] = erasedByte
	}
	return out
}
