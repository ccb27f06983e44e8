package ec

import (
	"starchain/util"

	"fmt"
	"bytes"
	"halftwo/mangos/xstr"
	secp256k1 "github.com/btcsuite/btcd/btcec"
)

const PubKeyPrefix = "StP"

// PubKey is a compressed secp256k1 public key.
type PubKey [33]byte

func (p *PubKey) IsZero() bool {
	return xstr.IndexNotByte(p[:], 0) == -1
}

func (p *PubKey) IsValid() bool {
	_, err := secp256k1.ParsePubKey(p[:], secp256k1.S256())
	return err == nil
}

func (p *PubKey) Address() (addr Address) {
	s256 := Sum256(p[:])
	copy(addr[:], s256[:])
	return
}

func (p *PubKey) Equal(p2 PubKey) bool {
	return bytes.Equal(p[:], p2[:])
}

func (p PubKey) String() string {
	return util.BytesToBase32Sum(p[:], PubKeyPrefix, 4, true)
}

func StringToPubKey(s string) (p PubKey, err error) {
	b, err := util.Base32SumToBytes(s, PubKeyPrefix, 4, true)
	if err != nil {
		return
	}

	if len(b) != len(p) {
		err = fmt.Errorf("invalid PubKey string")
		return
	}

	copy(p[:], b)
	return
}
