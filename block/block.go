package block

import (
	"starchain/ec"
	"starchain/util"

	"bytes"
)

// Block is one ledger entry. Height, Time, PrevHash and Hash are zero
// until the ledger appends the block; after that nothing changes.
type Block struct {
	Height int64
	Time int64
	PrevHash ec.Hash256	// zero for the genesis block
	Hash ec.Hash256
	Body []byte
}

// NewBlock encodes p into the body of a fresh, unappended Block.
func NewBlock(p Payload) (*Block, error) {
	body, err := p.Encode()
	if err != nil {
		return nil, err
	}
	return &Block{Body:body}, nil
}

func NewGenesisBlock() *Block {
	b, err := NewBlock(GenesisPayload())
	util.AssertNoError(err)
	return b
}

func (b *Block) HasPrevHash() bool {
	return !b.PrevHash.IsZero()
}

// ComputeHash hashes the block content with the Hash field left out.
func (b *Block) ComputeHash() ec.Hash256 {
	buf := &bytes.Buffer{}
	util.AssertNoError(b.serializeContent(buf))
	return ec.Sum256(buf.Bytes())
}

// Validate reports whether the stored hash matches the content.
// Linkage to the previous block is the ledger's concern.
func (b *Block) Validate() bool {
	return b.Hash == b.ComputeHash()
}

func (b *Block) DecodedBody() (Payload, error) {
	return DecodePayload(b.Body)
}

// Claim decodes the body and returns its BlockData, or ErrNotAClaim
// for the genesis block.
func (b *Block) Claim() (*BlockData, error) {
	p, err := b.DecodedBody()
	if err != nil {
		return nil, err
	}
	if p.Kind != PAYLOAD_CLAIM {
		return nil, ErrNotAClaim{Height:b.Height, Kind:p.Kind}
	}
	return &p.Claim, nil
}

// Clone returns a copy that shares no memory with b.
func (b *Block) Clone() Block {
	clone := *b
	clone.Body = util.CloneBytes(b.Body)
	return clone
}
