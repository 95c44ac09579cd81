package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/laborlink/matchcore/core"
)

// Key prefixes for different data types
const (
	eventRecordPrefix = "sevrec"
	eventTimePrefix   = "sevrect"
	eventIDSeq        = "sevrecseq"
)

// makeEventKey generates a key for a session event by ID.
func makeEventKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", eventRecordPrefix, id))
}

// makeEventTimeKey generates a composite key for the time index.
// Format: prefix:timestamp:id
func makeEventTimeKey(timestamp time.Time, id core.ID) []byte {
	prefix := eventTimePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
