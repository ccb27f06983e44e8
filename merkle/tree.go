package merkle

import (
	"starchain/ec"
)

// HashFromTwoHashes is the basic operation of the Merkle tree: Hash(left | right).
func HashFromTwoHashes(left, right ec.Hash256) (h ec.Hash256) {
	hasher := ec.New256Hasher()
	hasher.Write(left[:])
	hasher.Write(right[:])
	hasher.Sum(h[:0])
	return
}

// RootOfHashes computes the Merkle root of hashes in order.
// The root of no hashes is the zero hash; the root of one is itself.
func RootOfHashes(hashes []ec.Hash256) ec.Hash256 {
	k := len(hashes)
	switch k {
	case 0:
		return ec.Hash256{}
	case 1:
		return hashes[0]
	default:
		m := (k+1)/2
		left := RootOfHashes(hashes[:m])
		right := RootOfHashes(hashes[m:])
		return HashFromTwoHashes(left, right)
	}
}
