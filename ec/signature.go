package ec

import (
	"starchain/util"

	"fmt"
	"bytes"
	"halftwo/mangos/xstr"
	secp256k1 "github.com/btcsuite/btcd/btcec"
)

const SignaturePrefix = "StS"

// Signature is a compact recoverable secp256k1 signature:
// one recovery byte followed by R and S.
type Signature [65]byte


func (sg *Signature) IsZero() bool {
	return xstr.IndexNotByte(sg[:], 0) == -1
}

func (sg *Signature) RecoverHashPubKey(hash []byte) (p PubKey, err error) {
	if len(hash) != 32 {
		panic("len of hash must be 32")
	}
	pub, _, err := secp256k1.RecoverCompact(secp256k1.S256(), sg[:], hash)
	if err != nil {
		return
	}
	copy(p[:], pub.SerializeCompressed())
	return
}

func (sg *Signature) RecoverMessagePubKey(msg []byte) (p PubKey, err error) {
	hash := MessageHash(msg)
	return sg.RecoverHashPubKey(hash[:])
}

// VerifyMessageAddress reports whether sg over msg was made by the key
// behind addr.
func (sg *Signature) VerifyMessageAddress(msg []byte, addr Address) bool {
	p, err := sg.RecoverMessagePubKey(msg)
	if err != nil {
		return false
	}
	return addr.Equal(p.Address())
}

func (sg *Signature) Equal(s2 Signature) bool {
	return bytes.Equal(sg[:], s2[:])
}

func (sg Signature) String() string {
	return util.BytesToBase32Sum(sg[:], SignaturePrefix, 4, true)
}


func StringToSignature(str string) (sg Signature, err error) {
	b, err := util.Base32SumToBytes(str, SignaturePrefix, 4, true)
	if err != nil {
		return
	}

	if len(b) != len(sg) {
		err = fmt.Errorf("invalid Signature string")
		return
	}

	copy(sg[:], b)
	return
}
