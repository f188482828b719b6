package protocol

// Split slices payload into chunks of at most maxChunk bytes, preserving
// order and concatenation. The final chunk may be shorter. An empty payload
// yields a single empty chunk so that commands with no data still produce
// exactly one frame. maxChunk must be positive.
func Split(payload []byte, maxChunk int) [][]byte {
	if len(payload) == 0 {
		return [][]byte{{}}
	}

	chunks := make([][]byte, 0, (len(payload)+maxChunk-1)/maxChunk)
	for len(payload) > maxChunk {
		chunks = append(chunks, payload[:maxChunk])
		payload = payload[maxChunk:]
	}
	return append(chunks, payload)
}
