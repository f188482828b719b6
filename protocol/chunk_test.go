package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEmptyPayload(t *testing.T) {
	chunks := Split(nil, MaxChunk)
	require.Len(t, chunks, 1)
	assert.Empty(t, chunks[0])
}

func TestSplitPreservesConcatenation(t *testing.T) {
	testCases := []struct {
		name       string
		payloadLen int
		maxChunk   int
		wantChunks int
	}{
		{"UnderOneChunk", 100, MaxChunk, 1},
		{"ExactlyOneChunk", MaxChunk, MaxChunk, 1},
		{"OneByteOver", MaxChunk + 1, MaxChunk, 2},
		{"ExactMultiple", 3 * MaxChunk, MaxChunk, 3},
		{"RaggedTail", 2*MaxChunk + 7, MaxChunk, 3},
		{"TinyChunks", 10, 3, 4},
		{"ChunkOfOne", 5, 1, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := make([]byte, tc.payloadLen)
			for i := range payload {
				payload[i] = byte(i)
			}

			chunks := Split(payload, tc.maxChunk)
			require.Len(t, chunks, tc.wantChunks)

			for i, chunk := range chunks[:len(chunks)-1] {
				assert.Len(t, chunk, tc.maxChunk, "chunk %d", i)
			}
			last := chunks[len(chunks)-1]
			assert.NotEmpty(t, last)
			assert.LessOrEqual(t, len(last), tc.maxChunk)

			assert.Equal(t, payload, bytes.Join(chunks, nil))
		})
	}
}
