package block

import (
	"starchain/obj"

	"io"
)

const (
	_NO_PREV_HASH byte = 0
	_HAS_PREV_HASH byte = 1
)

// serializeContent writes everything that goes into the block hash:
// height, time, optional previous hash and body. Hash itself is excluded.
func (b *Block) serializeContent(w io.Writer) error {
	s := obj.Serializer{W:w}
	s.WriteBigEndian(b.Height)
	s.WriteBigEndian(b.Time)
	if b.HasPrevHash() {
		s.WriteByte(_HAS_PREV_HASH)
		s.Write(b.PrevHash[:])
	} else {
		s.WriteByte(_NO_PREV_HASH)
	}
	s.WriteVariableBytes(b.Body)
	return s.Err
}
