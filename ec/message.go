package ec

import (
	"starchain/obj"
	"starchain/util"

	"bytes"
)

const MESSAGE_MAGIC = "Star Registry Signed Message:\n"

// MessageHash frames msg behind MESSAGE_MAGIC so that a signed challenge
// can never double as a signature over a raw 32-byte hash.
func MessageHash(msg []byte) Hash256 {
	buf := &bytes.Buffer{}
	s := obj.NewSerializer(buf)
	s.WriteString(MESSAGE_MAGIC)
	s.WriteVariableBytes(msg)
	util.AssertNoError(s.Err)
	return Sum256(buf.Bytes())
}

// MessageVerifier checks text signatures against text addresses.
type MessageVerifier struct{}

// VerifyMessage reports whether signature is a valid signature over message
// by the owner of address. Malformed inputs verify as false.
func (MessageVerifier) VerifyMessage(message, address, signature string) bool {
	addr, err := StringToAddress(address)
	if err != nil {
		return false
	}
	sig, err := StringToSignature(signature)
	if err != nil {
		return false
	}
	return sig.VerifyMessageAddress([]byte(message), addr)
}

// SignText is the counterpart of VerifyMessage for wallets.
func SignText(k PrivKey, message string) (string, error) {
	sig, err := k.SignMessage([]byte(message))
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}
