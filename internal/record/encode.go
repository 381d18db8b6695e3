// internal/record/encode.go
package record

import (
	"bytes"
	"fmt"
)

// Encode packs a record into its fixed storage layout.
// Text is NUL-terminated and zero-padded to the field width.
// No IO. No side effects.
func Encode(r Record) []byte {
	buf := make([]byte, Size)

	buf[OffsetVersion] = r.Version

	putText(buf[OffsetNetworkName:OffsetNetworkName+NetworkNameWidth], r.NetworkName)
	putText(buf[OffsetNetworkSecret:OffsetNetworkSecret+NetworkSecretWidth], r.NetworkSecret)
	putText(buf[OffsetServiceAccount:OffsetServiceAccount+ServiceAccountWidth], r.ServiceAccount)
	putText(buf[OffsetServiceKey:OffsetServiceKey+ServiceKeyWidth], r.ServiceKey)

	buf[OffsetFanLevel] = r.FanLevel
	buf[OffsetLightLevel] = r.LightLevel
	buf[OffsetHeatLevel] = r.HeatLevel

	return buf
}

// Decode unpacks a raw storage image, sanitizing every text field:
//   - first byte == ErasedByte → empty
//   - otherwise the last byte of the field is forced to NUL
//
// The image is never modified.
func Decode(raw []byte) (Record, error) {
	if len(raw) < Size {
		return Record{}, fmt.Errorf("record: short image: got=%d want=%d", len(raw), Size)
	}

	return Record{
		Version:        raw[OffsetVersion],
		NetworkName:    getText(raw[OffsetNetworkName : OffsetNetworkName+NetworkNameWidth]),
		NetworkSecret:  getText(raw[OffsetNetworkSecret : OffsetNetworkSecret+NetworkSecretWidth]),
		ServiceAccount: getText(raw[OffsetServiceAccount : OffsetServiceAccount+ServiceAccountWidth]),
		ServiceKey:     getText(raw[OffsetServiceKey : OffsetServiceKey+ServiceKeyWidth]),
		FanLevel:       raw[OffsetFanLevel],
		LightLevel:     raw[OffsetLightLevel],
		HeatLevel:      raw[OffsetHeatLevel],
	}, nil
}

// ---- helpers (pure layout) ----

func putText(dst []byte, s string) {
	n := copy(dst[:len(dst)-1], s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func getText(field []byte) string {
	if field[0] == ErasedByte {
		return ""
	}
	// Content ends at the first NUL, or one byte short of the width.
	content := field[:len(field)-1]
	if i := bytes.IndexByte(content, 0); i >= 0 {
		content = content[:i]
	}
	return string(content)
}
