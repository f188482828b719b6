// Package serial provides the concrete printer transport over a serial
// device node, e.g. an RFCOMM binding of the printer's serial-profile
// channel (/dev/rfcomm0) or a USB serial adapter.
package serial

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// ErrTimeout means a read returned no data within the configured timeout.
var ErrTimeout = errors.New("receive timed out")

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/rfcomm0", "COM5").
	Device string

	// Baud rate. RFCOMM bindings ignore this; real UART adapters need it.
	Baud int

	// ReadTimeout bounds one Recv call.
	ReadTimeout time.Duration
}

// DefaultConfig returns the configuration the vendor application uses:
// a 60 second receive timeout on the given device.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 60 * time.Second,
	}
}

// Transport is a printer.Transport over one open serial port.
type Transport struct {
	port *serial.Port
	cfg  *Config
}

// Open opens the configured serial device.
func Open(cfg *Config) (*Transport, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening serial port %s: %w", cfg.Device, err)
	}

	return &Transport{port: port, cfg: cfg}, nil
}

// Send writes p to the device.
func (t *Transport) Send(p []byte) (int, error) {
	return t.port.Write(p)
}

// Recv reads up to maxLen bytes, blocking until data arrives or the
// configured timeout elapses. An empty read maps to ErrTimeout.
func (t *Transport) Recv(maxLen int) ([]byte, error) {
	buf := make([]byte, maxLen)
	n, err := t.port.Read(buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	return buf[:n], nil
}

// Close closes the serial port.
func (t *Transport) Close() error {
	if t.port != nil {
		return t.port.Close()
	}
	return nil
}
