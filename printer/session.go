package printer

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"

	"paperang/protocol"
)

// Session is one active conversation with a printer. Construction performs
// the checksum key negotiation, so a returned Session is ready for commands.
//
// A session is single-owner state: no internal locking, one Issue at a time.
// Callers needing concurrent access must serialize externally.
type Session struct {
	transport Transport
	keys      *protocol.KeyState
	cfg       Config
	log       *logrus.Entry
}

// New wraps transport in a session and negotiates the session checksum key.
// The device expects negotiation before any other command, so this happens
// here rather than lazily.
func New(transport Transport, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Session{
		transport: transport,
		keys:      protocol.NewKeyState(),
		cfg:       cfg,
		log:       cfg.Logger,
	}

	if err := s.negotiate(); err != nil {
		return nil, fmt.Errorf("key negotiation: %w", err)
	}
	return s, nil
}

// negotiate performs the one-time SET_CRC_KEY exchange. The request payload
// is the session key masked with the standard key, and the request frame
// itself is still checksummed under the standard key. The device's
// acknowledgement is drained but not validated; the key transition does not
// depend on its contents.
func (s *Session) negotiate() error {
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint32(payload, protocol.SessionKey^protocol.StandardKey)

	if err := s.sendChunks(protocol.CmdSetCRCKey, payload); err != nil {
		return err
	}

	raw, err := s.transport.Recv(s.cfg.RecvLen)
	if err != nil {
		return fmt.Errorf("draining acknowledgement: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"bytes":  len(raw),
		"frames": len(protocol.Demux(raw).Frames),
	}).Debug("drained key negotiation reply")

	if err := s.keys.Negotiate(protocol.SessionKey); err != nil {
		return err
	}
	s.log.Info("checksum key negotiated")
	return nil
}

// Issue sends one command, chunking payload across as many frames as needed,
// and optionally performs a single receive for the reply. With expectReply
// false it returns (nil, nil) on success. A timeout on the receive leaves
// the session state untouched; the caller may issue again.
func (s *Session) Issue(cmd protocol.Command, payload []byte, expectReply bool) ([]protocol.Frame, error) {
	if !s.keys.Negotiated() {
		return nil, protocol.ErrNotNegotiated
	}

	if err := s.sendChunks(cmd, payload); err != nil {
		return nil, err
	}
	if !expectReply {
		return nil, nil
	}
	return s.receive()
}

// sendChunks frames payload under the active key and writes each frame to
// the transport in order, sequence numbers counting up from zero.
func (s *Session) sendChunks(cmd protocol.Command, payload []byte) error {
	chunks := protocol.Split(payload, s.cfg.ChunkSize)
	for i, chunk := range chunks {
		frame, err := protocol.Encode(cmd, uint8(i), chunk, s.keys.Active())
		if err != nil {
			return fmt.Errorf("encoding %v frame %d: %w", cmd, i, err)
		}
		n, err := s.transport.Send(frame)
		if err != nil {
			return fmt.Errorf("sending %v frame %d: %w", cmd, i, err)
		}
		if n != len(frame) {
			return fmt.Errorf("sending %v frame %d: short write %d/%d", cmd, i, n, len(frame))
		}
		s.log.WithFields(logrus.Fields{
			"command":  cmd.String(),
			"sequence": i,
			"bytes":    n,
		}).Debug("sent frame")
	}
	return nil
}

// receive performs exactly one transport read and decodes every complete
// frame in it. Trailing bytes that do not form a complete frame are logged
// and dropped.
func (s *Session) receive() ([]protocol.Frame, error) {
	raw, err := s.transport.Recv(s.cfg.RecvLen)
	if err != nil {
		return nil, fmt.Errorf("receiving reply: %w", err)
	}
	s.log.WithField("hex", hex.EncodeToString(raw)).Debug("received bytes")

	res := protocol.Demux(raw)
	if res.Truncated() {
		s.log.WithFields(logrus.Fields{
			"discarded": len(res.Discarded),
			"hex":       hex.EncodeToString(res.Discarded),
		}).Warn("discarding unparseable trailing bytes")
	}

	frames := make([]protocol.Frame, 0, len(res.Frames))
	for _, raw := range res.Frames {
		frame, err := protocol.Decode(raw, s.keys.Active())
		if err != nil {
			return frames, fmt.Errorf("decoding reply frame %d: %w", len(frames), err)
		}
		s.log.WithFields(logrus.Fields{
			"command": frame.Command.String(),
			"length":  len(frame.Payload),
		}).Debug("decoded frame")
		frames = append(frames, frame)
	}
	return frames, nil
}

// PrintImage prints packed 1-bit raster data (see package raster). It
// selects plain paper, streams the data without waiting for a reply, and
// feeds past the tear bar.
func (s *Session) PrintImage(data []byte) error {
	if err := s.SetPaperType(0); err != nil {
		return err
	}
	if _, err := s.Issue(protocol.CmdPrintData, data, false); err != nil {
		return err
	}
	return s.FeedLine(s.cfg.FeedPadding)
}

// PrintTestPage asks the device to print its built-in self-test page.
func (s *Session) PrintTestPage() error {
	_, err := s.Issue(protocol.CmdPrintTestPage, []byte{0}, true)
	return err
}

// SetHeatDensity sets the print darkness, 0–100.
func (s *Session) SetHeatDensity(density uint8) error {
	_, err := s.Issue(protocol.CmdSetHeatDensity, []byte{density}, true)
	return err
}

// SetPaperType selects the loaded paper: 0 plain, 1 label.
func (s *Session) SetPaperType(paperType uint8) error {
	_, err := s.Issue(protocol.CmdSetPaperType, []byte{paperType}, true)
	return err
}

// SetPowerOffTime sets the auto power-down delay. Zero disables it.
func (s *Session) SetPowerOffTime(delay uint16) error {
	_, err := s.Issue(protocol.CmdSetPowerDownTime, u16le(delay), true)
	return err
}

// FeedLine advances the paper by lines dot rows.
func (s *Session) FeedLine(lines uint16) error {
	_, err := s.Issue(protocol.CmdFeedLine, u16le(lines), true)
	return err
}

// FeedToHeadLine advances the paper to the next label head mark.
func (s *Session) FeedToHeadLine(lines uint16) error {
	_, err := s.Issue(protocol.CmdFeedToHeadLine, u16le(lines), true)
	return err
}

// QueryBatteryStatus asks for the battery charge state.
func (s *Session) QueryBatteryStatus() ([]protocol.Frame, error) {
	return s.query(protocol.CmdGetBatStatus)
}

// QueryHeatDensity asks for the current print darkness.
func (s *Session) QueryHeatDensity() ([]protocol.Frame, error) {
	return s.query(protocol.CmdGetHeatDensity)
}

// QueryPowerOffTime asks for the auto power-down delay.
func (s *Session) QueryPowerOffTime() ([]protocol.Frame, error) {
	return s.query(protocol.CmdGetPowerDownTime)
}

// QuerySerialNumber asks for the device serial number.
func (s *Session) QuerySerialNumber() ([]protocol.Frame, error) {
	return s.query(protocol.CmdGetSN)
}

// QueryHardwareInfo asks for the hardware description record.
func (s *Session) QueryHardwareInfo() ([]protocol.Frame, error) {
	return s.query(protocol.CmdGetHWInfo)
}

// query issues a status request. The firmware expects a single 0x01 byte as
// the request payload for these commands.
func (s *Session) query(cmd protocol.Command) ([]protocol.Frame, error) {
	return s.Issue(cmd, []byte{1}, true)
}

func u16le(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}
