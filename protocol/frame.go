package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrPayloadTooLarge means a single frame payload exceeds the 16-bit
	// length field. Callers should chunk with Split first.
	ErrPayloadTooLarge = errors.New("payload exceeds maximum frame size")

	// ErrMalformedFrame means a buffer does not hold one well-formed frame:
	// bad start or end marker, or fewer bytes than the declared length implies.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrChecksumMismatch means the recomputed checksum under the active key
	// disagrees with the checksum carried in the frame.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Encode builds the wire bytes for one frame. The checksum covers payload
// only and is computed under key.
func Encode(cmd Command, seq uint8, payload []byte, key uint32) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}

	buf := make([]byte, 0, HeaderSize+len(payload)+TrailerSize)
	buf = append(buf, StartMarker, byte(cmd), seq)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(payload)))
	buf = append(buf, payload...)
	buf = binary.LittleEndian.AppendUint32(buf, Checksum(key, payload))
	buf = append(buf, EndMarker)
	return buf, nil
}

// Decode parses exactly one frame from the front of buf, verifying its
// checksum under key. buf must contain the complete frame; Demux produces
// suitable slices from raw receive buffers.
func Decode(buf []byte, key uint32) (Frame, error) {
	if len(buf) < HeaderSize+TrailerSize {
		return Frame{}, fmt.Errorf("%w: %d bytes is shorter than an empty frame", ErrMalformedFrame, len(buf))
	}
	if buf[0] != StartMarker {
		return Frame{}, fmt.Errorf("%w: bad start marker 0x%02X", ErrMalformedFrame, buf[0])
	}

	length := int(binary.LittleEndian.Uint16(buf[3:5]))
	total := HeaderSize + length + TrailerSize
	if len(buf) < total {
		return Frame{}, fmt.Errorf("%w: declared payload of %d bytes but only %d bytes in buffer",
			ErrMalformedFrame, length, len(buf))
	}
	if buf[total-1] != EndMarker {
		return Frame{}, fmt.Errorf("%w: bad end marker 0x%02X", ErrMalformedFrame, buf[total-1])
	}

	payload := make([]byte, length)
	copy(payload, buf[HeaderSize:HeaderSize+length])

	declared := binary.LittleEndian.Uint32(buf[HeaderSize+length : HeaderSize+length+4])
	if computed := Checksum(key, payload); computed != declared {
		return Frame{}, fmt.Errorf("%w: computed 0x%08X, frame carries 0x%08X",
			ErrChecksumMismatch, computed, declared)
	}

	return Frame{
		Command:  Command(buf[1]),
		Sequence: buf[2],
		Payload:  payload,
		Checksum: declared,
	}, nil
}
