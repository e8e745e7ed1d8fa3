package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/partdex/core"
)

// Key prefixes for different data types
const (
	partRecordPrefix = "partrec"
	partTokenPrefix  = "parttok"
)

// makePartKey generates a key for a part record by ID.
func makePartKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", partRecordPrefix, id))
}

// makeTokenKey generates a composite key for the token index.
// Format: prefix:term:id
// The term contains only letters and digits, so the separators are
// unambiguous, and the ID is fixed-width BigEndian so keys for the same
// term sort by ID.
func makeTokenKey(term string, id core.ID) []byte {
	prefix := partTokenPrefix + ":" + term + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, []byte(prefix))
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialTokenKey generates a partial key for prefix scans over terms.
// Format: prefix:term
func makePartialTokenKey(term string) []byte {
	return []byte(partTokenPrefix + ":" + term)
}

// parseTokenKey extracts the term and part ID from a token index key.
func parseTokenKey(key []byte) (string, core.ID, bool) {
	prefixLen := len(partTokenPrefix) + 1
	// prefix + ":" + at least one term byte + ":" + 8-byte ID
	if len(key) < prefixLen+1+1+8 {
		return "", 0, false
	}
	term := string(key[prefixLen : len(key)-9])
	id := core.ID(binary.BigEndian.Uint64(key[len(key)-8:]))
	return term, id, true
}

// makeTokenValue encodes a term frequency as a token index value.
func makeTokenValue(frequency int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(frequency))
	return buf
}

// parseTokenValue decodes a term frequency from a token index value.
func parseTokenValue(val []byte) int {
	if len(val) != 8 {
		return 0
	}
	return int(binary.BigEndian.Uint64(val))
}
