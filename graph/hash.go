package graph

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/AnacletoLAB/ensmallen-sub009/internal/csr"
)

// Hash returns an xxhash64 digest of the topology, the direction flag, the
// weights and the type arrays. Names are not hashed.
func (g *Graph) Hash() uint64 {
	d := xxhash.New()
	if g.directed {
		_, _ = d.Write([]byte{1})
	} else {
		_, _ = d.Write([]byte{0})
	}
	csr.WriteHash(d, g.store)

	buf := make([]byte, 0, 4*len(g.weights))
	for _, w := range g.weights {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(w))
	}
	_, _ = d.Write(buf)

	buf = buf[:0]
	for _, t := range g.nodeTypes {
		buf = binary.LittleEndian.AppendUint16(buf, t)
	}
	for _, t := range g.edgeTypes {
		buf = binary.LittleEndian.AppendUint16(buf, t)
	}
	_, _ = d.Write(buf)

	return d.Sum64()
}
