package protocol

import (
	"errors"
	"hash/crc32"
)

// StandardKey is the checksum key every device boots with. Frames exchanged
// before key negotiation are checksummed under this value.
const StandardKey uint32 = 0x35769521

// SessionKey is the key negotiated on connect. The constant comes from the
// vendor application and has no documented meaning; it is preserved verbatim
// for wire compatibility.
const SessionKey uint32 = 0x06968634 ^ 0x002E696D

// Checksum computes the frame checksum over payload: a reflected CRC-32
// (the zip/gzip polynomial) whose running register is seeded from key rather
// than starting fresh. Equivalent to zlib's crc32(payload, key).
func Checksum(key uint32, payload []byte) uint32 {
	return crc32.Update(key, crc32.IEEETable, payload)
}

// ErrAlreadyNegotiated is returned by KeyState.Negotiate after the one
// permitted key transition has happened.
var ErrAlreadyNegotiated = errors.New("checksum key already negotiated")

// ErrNotNegotiated is returned when a command is issued before the session
// has performed key negotiation.
var ErrNotNegotiated = errors.New("checksum key not negotiated")

// KeyState tracks the active checksum key for one session. It starts at
// StandardKey and transitions exactly once, when the SET_CRC_KEY exchange
// completes. Not safe for concurrent use; a session owns exactly one.
type KeyState struct {
	active     uint32
	negotiated bool
}

// NewKeyState returns a key state holding the standard power-on key.
func NewKeyState() *KeyState {
	return &KeyState{active: StandardKey}
}

// Active returns the key current checksums must be computed under.
func (k *KeyState) Active() uint32 {
	return k.active
}

// Negotiated reports whether the one-time key transition has happened.
func (k *KeyState) Negotiated() bool {
	return k.negotiated
}

// Negotiate switches the active key to key. A second call is rejected with
// ErrAlreadyNegotiated; the key never reverts within a session.
func (k *KeyState) Negotiate(key uint32) error {
	if k.negotiated {
		return ErrAlreadyNegotiated
	}
	k.active = key
	k.negotiated = true
	return nil
}
