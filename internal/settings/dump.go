// internal/settings/dump.go
package settings

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tamzrod/greenhouse-settings/internal/console"
	"github.com/tamzrod/greenhouse-settings/internal/record"
)

var dumpLabels = map[string]string{
	"version":         "Version",
	"network_name":    "Network name",
	"network_secret":  "Network password",
	"service_account": "Service account",
	"service_key":     "Service key",
	"fan_level":       "Fan level",
	"light_level":     "Light level",
	"heat_level":      "Heat level",
}

// Dump writes every field, in storage order, with its byte offset in the
// backing region. The network secret is masked.
func (s *Store) Dump(w io.Writer) {
	for _, f := range record.Layout {
		fmt.Fprintf(w, "%s: [%s] (offset %d)\r\n", dumpLabels[f.Name], fieldValue(s.rec, f.Name), f.Offset)
	}
}

func fieldValue(r record.Record, name string) string {
	switch name {
	case "version":
		return strconv.Itoa(int(r.Version))
	case "network_name":
		return r.NetworkName
	case "network_secret":
		return strings.Repeat(string(console.MaskChar), len(r.NetworkSecret))
	case "service_account":
		return r.ServiceAccount
	case "service_key":
		return r.ServiceKey
	case "fan_level":
		return strconv.Itoa(int(r.FanLevel))
	case "light_level":
		return strconv.Itoa(int(r.LightLevel))
	case "heat_level":
		return strconv.Itoa(int(r.HeatLevel))
	default:
		return "?"
	}
}
