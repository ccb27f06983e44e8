package ec

import (
	"fmt"
	"hash"
	"sync"
	"encoding/hex"
	"golang.org/x/crypto/sha3"
)

type Hash256 [32]byte

func New256Hasher() hash.Hash {
	return sha3.New256()
}

var _s256Pool = sync.Pool {
	New: func() interface{} {
		return New256Hasher()
	},
}

// Sum256 is the chain's hash function: SHA3-256.
func Sum256(msg []byte) (hh Hash256) {
	hasher := _s256Pool.Get().(hash.Hash)
	defer _s256Pool.Put(hasher)

	hasher.Reset()
	hasher.Write(msg)
	hasher.Sum(hh[:0])
	return
}

// HexToHash256 parses exactly 64 hex digits.
func HexToHash256(s string) (h Hash256, err error) {
	if len(s) != 2*len(h) {
		err = fmt.Errorf("ec: hash must be %d hex digits, got %d", 2*len(h), len(s))
		return
	}
	_, err = hex.Decode(h[:], []byte(s))
	return
}

func (h Hash256) IsZero() bool {
	return h == Hash256{}
}

func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}
