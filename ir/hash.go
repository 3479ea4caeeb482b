package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// Shared seed keeps hashes comparable across nodes within a process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal:
// object entry hashes are combined commutatively so that trees that
// differ only in key order hash alike. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	switch n.Type {
	case ObjectType:
		// Sum of per-entry hashes, like a map hash.
		var sum uint64
		for i, f := range n.Fields {
			sum += maphash.String(hashSeed, f) ^ n.Values[i].Hash()
		}
		return mix(byte(n.Type), sum)
	case ArrayType:
		var h maphash.Hash
		h.SetSeed(hashSeed)
		h.WriteByte(byte(n.Type))
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
		return h.Sum64()
	case StringType:
		return mix(byte(n.Type), maphash.String(hashSeed, n.String))
	case NumberType:
		return mix(byte(n.Type), uint64(n.Int64))
	case BoolType:
		if n.Bool {
			return mix(byte(n.Type), 1)
		}
		return mix(byte(n.Type), 0)
	default:
		return mix(byte(n.Type), 0)
	}
}

func mix(t byte, v uint64) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(t)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
	return h.Sum64()
}
