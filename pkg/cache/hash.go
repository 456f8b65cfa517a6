package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashBytes returns the hex-encoded SHA-256 digest of data. Used to derive
// content hashes for graphs and layouts before keying.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey hashes a stage prefix, a content hash, and an option struct into
// a single key. Options are serialized as JSON so that field order is
// stable and any option change changes the key.
func hashKey(stage, contentHash string, opts any) string {
	enc, err := json.Marshal(opts)
	if err != nil {
		// Option structs contain only scalars; Marshal cannot fail here.
		enc = []byte(fmt.Sprintf("%+v", opts))
	}
	h := sha256.New()
	h.Write([]byte(stage))
	h.Write([]byte{0})
	h.Write([]byte(contentHash))
	h.Write([]byte{0})
	h.Write(enc)
	return stage + ":" + hex.EncodeToString(h.Sum(nil))
}
