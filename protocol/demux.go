package protocol

import "encoding/binary"

// DemuxResult holds the outcome of slicing a receive buffer into frames.
// Discarded carries any trailing bytes that did not form a complete frame:
// either garbage after the last frame or a frame cut short by the read.
// Surfacing them lets callers log the loss instead of dropping it silently.
type DemuxResult struct {
	Frames    [][]byte
	Discarded []byte
}

// Truncated reports whether demuxing stopped before consuming the buffer.
func (r DemuxResult) Truncated() bool {
	return len(r.Discarded) > 0
}

// Demux slices zero or more complete raw frames from the front of buf.
// It walks the buffer using each frame's declared payload length and stops
// at the first byte that is not a start marker, or at a frame that extends
// past the end of the buffer. Each returned slice aliases buf and holds one
// complete frame for Decode.
func Demux(buf []byte) DemuxResult {
	var res DemuxResult
	for len(buf) > 0 && buf[0] == StartMarker {
		if len(buf) < HeaderSize {
			break
		}
		length := int(binary.LittleEndian.Uint16(buf[3:5]))
		total := HeaderSize + length + TrailerSize
		if len(buf) < total {
			break
		}
		res.Frames = append(res.Frames, buf[:total])
		buf = buf[total:]
	}
	res.Discarded = buf
	return res
}
