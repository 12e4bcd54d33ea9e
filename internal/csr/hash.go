package csr

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hashChunk is the number of values encoded per Write call.
const hashChunk = 4096

// Hash returns an xxhash64 digest of the prefix sums and destinations.
// Stores with the same topology hash equal.
func (c *CSR) Hash() uint64 {
	d := xxhash.New()
	WriteHash(d, c)

	return d.Sum64()
}

// WriteHash feeds the topology of c into d so callers can extend the
// digest with their own arrays.
func WriteHash(d *xxhash.Digest, c *CSR) {
	buf := make([]byte, 0, 8*hashChunk)
	for i, v := range c.outbounds {
		buf = binary.LittleEndian.AppendUint64(buf, v)
		if (i+1)%hashChunk == 0 {
			buf = flush(d, buf)
		}
	}
	buf = flush(d, buf)
	for i, v := range c.destinations {
		buf = binary.LittleEndian.AppendUint32(buf, v)
		if (i+1)%hashChunk == 0 {
			buf = flush(d, buf)
		}
	}
	flush(d, buf)
}

func flush(d *xxhash.Digest, buf []byte) []byte {
	if len(buf) > 0 {
		_, _ = d.Write(buf)
	}

	return buf[:0]
}
