// Package protocol implements the Paperang wire protocol: frame
// encoding/decoding with a keyed CRC-32 checksum, payload chunking, and
// demultiplexing of received byte buffers into frames.
package protocol

// Frame layout constants. All multi-byte fields are little-endian.
const (
	StartMarker = 0x02 // first byte of every frame
	EndMarker   = 0x03 // last byte of every frame

	HeaderSize  = 5 // marker + command + sequence + length (u16)
	TrailerSize = 5 // checksum (u32) + end marker

	// MaxPayload is the largest payload one frame can carry, bounded by
	// the 16-bit length field.
	MaxPayload = 0xFFFF

	// MaxChunk is the largest payload the device accepts per frame in
	// practice. Larger logical payloads are split before framing.
	MaxChunk = 1536

	// MaxRecvLen is the receive buffer size for one reply read.
	MaxRecvLen = 1024
)

// Frame is one decoded protocol frame. Frames are immutable value objects;
// Payload is owned by the frame, not aliased into the receive buffer.
type Frame struct {
	Command  Command
	Sequence uint8
	Payload  []byte
	Checksum uint32
}
