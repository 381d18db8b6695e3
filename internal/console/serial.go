// internal/console/serial.go
package console

import (
	"errors"
	"sync"
	"time"

	"github.com/goburrow/serial"
	"go.uber.org/zap"
)

// SerialConfig is minimal UART config.
type SerialConfig struct {
	Address  string
	BaudRate int
	// ReadTimeout bounds a single TryReadByte; expiry means "nothing available".
	ReadTimeout time.Duration
}

// Serial is a console on a UART (8N1).
type Serial struct {
	port serial.Port
	log  *zap.Logger

	buf      [1]byte
	warnOnce sync.Once
}

// OpenSerial opens the UART described by cfg.
func OpenSerial(cfg SerialConfig, log *zap.Logger) (*Serial, error) {
	if cfg.Address == "" {
		return nil, errors.New("console serial: address required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	p, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.ReadTimeout,
	})
	if err != nil {
		return nil, err
	}

	return &Serial{port: p, log: log}, nil
}

// TryReadByte reads one byte or reports that none arrived within the read timeout.
func (s *Serial) TryReadByte() (byte, bool) {
	n, err := s.port.Read(s.buf[:])
	if err != nil {
		if !errors.Is(err, serial.ErrTimeout) {
			s.warnOnce.Do(func() {
				s.log.Warn("console read failed", zap.Error(err))
			})
		}
		return 0, false
	}
	if n == 0 {
		return 0, false
	}
	return s.buf[0], true
}

func (s *Serial) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

// Close closes the UART.
func (s *Serial) Close() error {
	if s == nil || s.port == nil {
		return nil
	}
	return s.port.Close()
}
