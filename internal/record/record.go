// internal/record/record.go
package record

import "bytes"

// Record is the decoded settings image.
// Text fields hold content only (no terminator) and never exceed width-1 bytes.
type Record struct {
	Version uint8

	// User supplied settings
	NetworkName    string
	NetworkSecret  string
	ServiceAccount string
	ServiceKey     string

	// Device controlled values
	FanLevel   uint8
	LightLevel uint8
	HeatLevel  uint8
}

// Valid reports whether the record can be trusted as-is.
func (r Record) Valid() bool {
	return r.Version == Version &&
		r.NetworkName != "" &&
		r.NetworkSecret != "" &&
		r.ServiceAccount != "" &&
		r.ServiceKey != ""
}

// Field describes one field of the storage layout.
type Field struct {
	Name   string
	Offset int
	Width  int
	Text   bool
}

// Layout lists every field in storage order.
var Layout = []Field{
	{Name: "version", Offset: OffsetVersion, Width: 1},
	{Name: "network_name", Offset: OffsetNetworkName, Width: NetworkNameWidth, Text: true},
	{Name: "network_secret", Offset: OffsetNetworkSecret, Width: NetworkSecretWidth, Text: true},
	{Name: "service_account", Offset: OffsetServiceAccount, Width: ServiceAccountWidth, Text: true},
	{Name: "service_key", Offset: OffsetServiceKey, Width: ServiceKeyWidth, Text: true},
	{Name: "fan_level", Offset: OffsetFanLevel, Width: 1},
	{Name: "light_level", Offset: OffsetLightLevel, Width: 1},
	{Name: "heat_level", Offset: OffsetHeatLevel, Width: 1},
}

// CleanText turns a raw console answer into field content: it ends at the
// first NUL, leading ErasedByte bytes are dropped, and it is clipped to fit
// width with its terminator. An empty result means "no answer".
func CleanText(raw []byte, width int) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	raw = bytes.TrimLeft(raw, string([]byte{ErasedByte}))
	return Truncate(string(raw), width)
}

// Truncate clips s so it fits a text field of the given width with its terminator.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) > width-1 {
		return s[:width-1]
	}
	return s
}
