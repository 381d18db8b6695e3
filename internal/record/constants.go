// internal/record/constants.go
package record

// Settings record layout constants.
// These values define the on-storage format and MUST NOT be configurable.
// Changing any width or the field order requires bumping Version.

// ---- FORMAT ----

// Version is the format tag stored in the first byte.
// A stored record with any other tag is rebuilt from scratch.
const Version uint8 = 2

// ErasedByte is the value an erased EEPROM/flash cell reads as.
// A text field whose first byte is ErasedByte was never written.
const ErasedByte byte = 0xFF

// ---- FIELD WIDTHS (bytes, terminator included) ----

const (
	NetworkNameWidth    = 32
	NetworkSecretWidth  = 32
	ServiceAccountWidth = 32
	ServiceKeyWidth     = 48
)

// ---- FIELD OFFSETS ----

const (
	OffsetVersion        = 0
	OffsetNetworkName    = OffsetVersion + 1
	OffsetNetworkSecret  = OffsetNetworkName + NetworkNameWidth
	OffsetServiceAccount = OffsetNetworkSecret + NetworkSecretWidth
	OffsetServiceKey     = OffsetServiceAccount + ServiceAccountWidth
	OffsetFanLevel       = OffsetServiceKey + ServiceKeyWidth
	OffsetLightLevel     = OffsetFanLevel + 1
	OffsetHeatLevel      = OffsetLightLevel + 1
)

// Size is the total encoded size of a record.
const Size = OffsetHeatLevel + 1
