// internal/settings/store.go
package settings

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/greenhouse-settings/internal/console"
	"github.com/tamzrod/greenhouse-settings/internal/nvstore"
	"github.com/tamzrod/greenhouse-settings/internal/record"
)

// Store owns the in-memory settings record and mediates every read and
// write of the backing region. Single owner; not safe for concurrent use.
type Store struct {
	backing nvstore.Backing
	port    console.Port
	clk     console.Clock
	log     *zap.Logger

	debug         bool
	promptTimeout time.Duration

	rec         record.Record
	setupPasses int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the structured logger. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the clock used by the console reader.
func WithClock(c console.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clk = c
		}
	}
}

// WithDebug dumps the record to the console on load and before every commit.
func WithDebug(on bool) Option {
	return func(s *Store) { s.debug = on }
}

// WithPromptTimeout bounds each setup prompt. 0 waits forever.
func WithPromptTimeout(d time.Duration) Option {
	return func(s *Store) { s.promptTimeout = d }
}

// New creates a Store. Call Load before using accessors.
func New(backing nvstore.Backing, port console.Port, opts ...Option) *Store {
	s := &Store{
		backing: backing,
		port:    port,
		clk:     console.SystemClock{},
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load reads the backing region, sanitizes it, and runs setup until the
// record is valid. It returns early only on a backing failure or when ctx ends.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.backing.Begin(record.Size)
	if err != nil {
		return fmt.Errorf("settings: begin: %w", err)
	}

	rec, err := record.Decode(raw)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	s.rec = rec
	s.setupPasses = 0

	s.log.Info("settings loaded",
		zap.Int("bytes", record.Size),
		zap.Uint8("version", s.rec.Version),
		zap.Bool("valid", s.rec.Valid()),
	)

	if s.debug {
		console.Println(s.port, fmt.Sprintf(
			"Loaded %d bytes of data from EEPROM (version %d)",
			record.Size, s.rec.Version,
		))
		s.Dump(s.port)
	}

	for pass := 0; !s.rec.Valid(); pass++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("settings: setup interrupted: %w", err)
		}

		reason := invalidReason(s.rec)
		s.log.Warn("forcing reconfiguration", zap.String("reason", reason), zap.Int("pass", pass+1))

		if pass > 0 {
			console.Println(s.port, "Settings incomplete, restarting setup")
		} else if s.debug {
			console.Println(s.port, "Forcing RECONFIG based on missing data")
		}

		if err := s.Reconfigure(ctx); err != nil {
			return err
		}
		s.setupPasses++
	}

	return nil
}

// SetupRan reports whether the last Load had to run interactive setup.
func (s *Store) SetupRan() bool {
	return s.setupPasses > 0
}

// Valid reports whether the in-memory record passes validation.
func (s *Store) Valid() bool {
	return s.rec.Valid()
}

// Record returns a copy of the in-memory record.
func (s *Store) Record() record.Record {
	return s.rec
}

// ---- user settings ----

func (s *Store) NetworkName() string    { return s.rec.NetworkName }
func (s *Store) NetworkSecret() string  { return s.rec.NetworkSecret }
func (s *Store) ServiceAccount() string { return s.rec.ServiceAccount }
func (s *Store) ServiceKey() string     { return s.rec.ServiceKey }

// ---- device levels ----

func (s *Store) Fan() uint8   { return s.rec.FanLevel }
func (s *Store) Light() uint8 { return s.rec.LightLevel }
func (s *Store) Heat() uint8  { return s.rec.HeatLevel }

func (s *Store) SetFan(level uint8) error   { return s.setLevel("fan", &s.rec.FanLevel, level) }
func (s *Store) SetLight(level uint8) error { return s.setLevel("light", &s.rec.LightLevel, level) }
func (s *Store) SetHeat(level uint8) error  { return s.setLevel("heat", &s.rec.HeatLevel, level) }

// setLevel stores and commits a level. An unchanged level is not committed.
// On commit failure the previous level is restored so a retry commits again.
func (s *Store) setLevel(name string, dst *uint8, level uint8) error {
	if *dst == level {
		return nil
	}

	prev := *dst
	*dst = level

	if err := s.commit(); err != nil {
		*dst = prev
		return fmt.Errorf("settings: set %s level: %w", name, err)
	}

	console.Println(s.port, fmt.Sprintf("Updated %s level to: %d", name, level))
	s.log.Info("level updated", zap.String("level", name), zap.Uint8("value", level))
	return nil
}

// commit flushes the whole record to the backing region.
func (s *Store) commit() error {
	if s.debug {
		console.Println(s.port, fmt.Sprintf("Saving %d bytes of data to EEPROM:", record.Size))
		s.Dump(s.port)
	}

	if err := s.backing.Commit(record.Encode(s.rec)); err != nil {
		s.log.Error("settings commit failed", zap.Error(err))
		return fmt.Errorf("settings: commit: %w", err)
	}

	s.log.Debug("settings committed", zap.Int("bytes", record.Size))
	return nil
}

func invalidReason(r record.Record) string {
	switch {
	case r.Version != record.Version:
		return fmt.Sprintf("version %d, want %d", r.Version, record.Version)
	case r.NetworkName == "":
		return "network_name missing"
	case r.NetworkSecret == "":
		return "network_secret missing"
	case r.ServiceAccount == "":
		return "service_account missing"
	case r.ServiceKey == "":
		return "service_key missing"
	default:
		return "valid"
	}
}
