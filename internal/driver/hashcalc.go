package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"soare/internal/minify"
)

// Digest is a SHA-256 cache key.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// cacheKey: H(schema || max_chars || width || nowrap || content). Любая опция,
// влияющая на вывод, должна попасть в ключ.
func cacheKey(content []byte, opts minify.Options) Digest {
	h := sha256.New()
	var hdr [12]byte
	binary.LittleEndian.PutUint16(hdr[0:2], diskCacheSchemaVersion)
	binary.LittleEndian.PutUint64(hdr[2:10], uint64(int64(opts.MaxCharPerLine)))
	hdr[10] = byte(opts.Width)
	if opts.NoWrap {
		hdr[11] = 1
	}
	_, _ = h.Write(hdr[:])
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
