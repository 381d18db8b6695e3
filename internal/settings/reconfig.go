// internal/settings/reconfig.go
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/tamzrod/greenhouse-settings/internal/console"
	"github.com/tamzrod/greenhouse-settings/internal/record"
)

// prompt is one interactively collected text field.
type prompt struct {
	label  string
	width  int
	secret bool
	field  *string
}

func prompts(r *record.Record) []prompt {
	return []prompt{
		{label: "Network name", width: record.NetworkNameWidth, field: &r.NetworkName},
		{label: "Network password", width: record.NetworkSecretWidth, secret: true, field: &r.NetworkSecret},
		{label: "Service account", width: record.ServiceAccountWidth, field: &r.ServiceAccount},
		{label: "Service key", width: record.ServiceKeyWidth, field: &r.ServiceKey},
	}
}

// Reconfigure collects every user setting from the console in one pass,
// then commits once. An empty answer keeps the stored value, so the record
// may still be invalid afterwards; see Valid.
//
// Answers are collected into a copy; if ctx ends mid-pass the in-memory
// record is left untouched and nothing is committed.
func (s *Store) Reconfigure(ctx context.Context) error {
	next := s.rec
	next.Version = record.Version

	// Turn off all external devices to be safe.
	next.FanLevel = 0
	next.LightLevel = 0
	next.HeatLevel = 0

	for _, p := range prompts(&next) {
		buf := make([]byte, p.width)

		n, _ := console.ReadLine(ctx, s.port, s.clk, buf, p.text(), s.promptTimeout, p.secret)
		if answer := record.CleanText(buf[:n], p.width); answer != "" {
			*p.field = answer
		}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("settings: reconfigure interrupted: %w", err)
	}

	s.rec = next
	return s.commit()
}

// text renders the prompt with the current value; secrets show one '*' per byte.
func (p prompt) text() string {
	cur := *p.field
	if p.secret {
		cur = strings.Repeat(string(console.MaskChar), len(cur))
	}
	return fmt.Sprintf("%s [%s]: ", p.label, cur)
}
