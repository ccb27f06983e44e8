package ec

import (
	"starchain/util"

	"fmt"
	"halftwo/mangos/xstr"
	secp256k1 "github.com/btcsuite/btcd/btcec"
)

const PrivKeyPrefix = "StK"

type PrivKey [32]byte

func NewPrivKey() (k PrivKey) {
	priv, err := secp256k1.NewPrivateKey(secp256k1.S256())
	if err != nil {
		panic(err)
	}
	copy(k[:], priv.Serialize())
	return
}

func (k *PrivKey) IsZero() bool {
	return xstr.IndexNotByte(k[:], 0) == -1
}

func (k *PrivKey) SignHash(hash []byte) (sg Signature, err error) {
	if len(hash) != 32 {
		panic("len of hash must be 32")
	}
	priv, _ := secp256k1.PrivKeyFromBytes(secp256k1.S256(), k[:])
	sig, err := secp256k1.SignCompact(secp256k1.S256(), priv, hash, true)
	if err != nil {
		return
	}
	copy(sg[:], sig)
	return
}

// SignMessage signs the framed digest of msg, see MessageHash.
func (k *PrivKey) SignMessage(msg []byte) (sg Signature, err error) {
	hash := MessageHash(msg)
	return k.SignHash(hash[:])
}

func (k *PrivKey) PubKey() (p PubKey) {
	_, pub := secp256k1.PrivKeyFromBytes(secp256k1.S256(), k[:])
	copy(p[:], pub.SerializeCompressed())
	return
}

func (k *PrivKey) Address() Address {
	p := k.PubKey()
	return p.Address()
}

func (k PrivKey) String() string {
	return util.BytesToBase32Sum(k[:], PrivKeyPrefix, 4, true)
}

func StringToPrivKey(s string) (k PrivKey, err error) {
	b, err := util.Base32SumToBytes(s, PrivKeyPrefix, 4, true)
	if err != nil {
		return
	}

	if len(b) != len(k) {
		err = fmt.Errorf("invalid PrivKey string")
		return
	}

	copy(k[:], b)
	return
}
