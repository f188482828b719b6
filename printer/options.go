package printer

import (
	"github.com/sirupsen/logrus"

	"paperang/protocol"
)

// Config holds the session tunables.
type Config struct {
	// ChunkSize is the largest payload sent in one frame.
	ChunkSize int

	// RecvLen is the buffer size for one reply read.
	RecvLen int

	// FeedPadding is how many lines to feed after printed image data so the
	// output clears the tear bar.
	FeedPadding uint16

	// Logger receives session activity. Defaults to the standard logger.
	Logger *logrus.Entry
}

func defaultConfig() Config {
	return Config{
		ChunkSize:   protocol.MaxChunk,
		RecvLen:     protocol.MaxRecvLen,
		FeedPadding: 300,
		Logger:      logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Option adjusts the session configuration.
type Option func(*Config)

// WithLogger routes session logging through entry.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *Config) {
		c.Logger = entry
	}
}

// WithChunkSize overrides the per-frame payload limit.
func WithChunkSize(n int) Option {
	return func(c *Config) {
		c.ChunkSize = n
	}
}

// WithRecvLen overrides the reply read buffer size.
func WithRecvLen(n int) Option {
	return func(c *Config) {
		c.RecvLen = n
	}
}

// WithFeedPadding overrides the post-image feed length.
func WithFeedPadding(lines uint16) Option {
	return func(c *Config) {
		c.FeedPadding = lines
	}
}
