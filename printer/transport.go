// Package printer drives one Paperang printer conversation over a byte
// stream: it negotiates the checksum key on connect, frames outgoing
// commands, and decodes replies.
package printer

// Transport is the byte-stream connection to the device, typically a
// serial-profile link. Implementations block; Recv returns whatever bytes
// arrived within the transport's timeout. The session borrows the transport
// and never closes it.
type Transport interface {
	// Send writes p to the device and returns the number of bytes written.
	Send(p []byte) (int, error)

	// Recv reads up to maxLen bytes, blocking until data arrives or the
	// transport's timeout elapses.
	Recv(maxLen int) ([]byte, error)
}
