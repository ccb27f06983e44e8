package ec

import (
	"starchain/util"

	"fmt"
	"bytes"
)

const ADDRESS_PREFIX = "StA"

// Address is the first 20 bytes of the SHA3-256 of a compressed public key.
type Address [20]byte

func (a *Address) SetBytes(b []byte) {
	if len(b) != 20 {
		panic("Length of address bytes must be 20")
	}
	copy(a[:], b)
}

func (a *Address) Equal(a2 Address) bool {
	return bytes.Equal(a[:], a2[:])
}

func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

func (a Address) String() string {
	return util.BytesToBase32Sum(a[:], ADDRESS_PREFIX, 4, true)
}

func StringToAddress(s string) (a Address, err error) {
	b, err := util.Base32SumToBytes(s, ADDRESS_PREFIX, 4, true)
	if err != nil {
		return
	}

	if len(b) != len(a) {
		err = fmt.Errorf("invalid Address string")
		return
	}

	copy(a[:], b)
	return
}
