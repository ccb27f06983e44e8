package obj

import (
	"io"
	"fmt"
	"encoding/binary"
	"halftwo/mangos/xerr"
)

// Serializer accumulates the first write error in Err, so a run of
// writes can be checked once at the end.
type Serializer struct {
	W io.Writer
	N int
	Err error
}

func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{W:w}
}

func (s *Serializer) WriteBigEndian(data interface{}) {
	if s.Err == nil {
		s.Err = binary.Write(s.W, binary.BigEndian, data)
		if s.Err == nil {
			s.N += binary.Size(data)
		}
	}
}

func (s *Serializer) Write(data []byte) {
	if s.Err == nil && len(data) > 0 {
		var n int
		n, s.Err = s.W.Write(data)
		s.N += n
		if s.Err == nil && n != len(data) {
			s.Err = xerr.Trace(fmt.Errorf("Write less than expected data"))
		}
	}
}

func (s *Serializer) WriteByte(b byte) {
	s.Write([]byte{b})
}

func (s *Serializer) WriteUvarint(n uint64) {
	if s.Err == nil {
		var buf [binary.MaxVarintLen64]byte
		k := binary.PutUvarint(buf[:], n)
		s.Write(buf[:k])
	}
}

func (s *Serializer) WriteVariableBytes(data []byte) {
	if s.Err == nil {
		s.WriteUvarint(uint64(len(data)))
		if s.Err == nil {
			s.Write(data)
		}
	}
}

func (s *Serializer) WriteString(str string) {
	s.WriteVariableBytes([]byte(str))
}
