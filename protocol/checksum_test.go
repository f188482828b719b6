package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumStandardVector(t *testing.T) {
	// With a zero key the seeded CRC degenerates to the standard CRC-32,
	// for which "123456789" is the canonical check value.
	assert.Equal(t, uint32(0xCBF43926), Checksum(0, []byte("123456789")))
}

func TestChecksumEmptyPayloadReturnsKey(t *testing.T) {
	for _, key := range []uint32{0, StandardKey, SessionKey, 0xFFFFFFFF} {
		assert.Equal(t, key, Checksum(key, nil))
		assert.Equal(t, key, Checksum(key, []byte{}))
	}
}

func TestChecksumChains(t *testing.T) {
	// Seeding with a previous result must continue that computation, the
	// same contract zlib's crc32(data, value) has.
	a := []byte("hello ")
	b := []byte("printer")
	whole := append(append([]byte{}, a...), b...)

	assert.Equal(t, Checksum(0, whole), Checksum(Checksum(0, a), b))
	assert.Equal(t, Checksum(StandardKey, whole), Checksum(Checksum(StandardKey, a), b))
}

func TestChecksumKeySensitivity(t *testing.T) {
	payload := []byte{0x05}
	assert.NotEqual(t, Checksum(StandardKey, payload), Checksum(SessionKey, payload))
}

func TestKeyStateLifecycle(t *testing.T) {
	ks := NewKeyState()
	assert.Equal(t, StandardKey, ks.Active())
	assert.False(t, ks.Negotiated())

	require.NoError(t, ks.Negotiate(SessionKey))
	assert.Equal(t, SessionKey, ks.Active())
	assert.True(t, ks.Negotiated())

	// The transition happens at most once; a second attempt must not
	// silently overwrite the active key.
	err := ks.Negotiate(0xDEADBEEF)
	require.ErrorIs(t, err, ErrAlreadyNegotiated)
	assert.Equal(t, SessionKey, ks.Active())
}
