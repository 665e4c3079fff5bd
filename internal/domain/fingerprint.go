package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

type Fingerprint string

// ComputeFingerprint hashes a length-prefixed encoding of (subject, profileContext) so
// that ("ab", "c") and ("a", "bc") never share a key.
func ComputeFingerprint(subject, profileContext string) Fingerprint {
	hash := sha256.New()
	for _, part := range []string{subject, profileContext} {
		var size [8]byte
		binary.BigEndian.PutUint64(size[:], uint64(len(part)))
		_, _ = hash.Write(size[:])
		_, _ = hash.Write([]byte(part))
	}

	return Fingerprint(hex.EncodeToString(hash.Sum(nil)))
}

func (f Fingerprint) String() string {
	return string(f)
}
