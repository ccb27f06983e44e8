package block

import (
	"encoding/hex"
	"encoding/json"
)

type _BlockJson struct {
	Height int64		`json:"height"`
	Time int64		`json:"time"`
	PrevHash *string	`json:"previousBlockHash"`
	Hash string		`json:"hash"`
	Body string		`json:"body"`
}

// MarshalJSON renders hashes and body as hex; previousBlockHash is null
// for the genesis block.
func (b Block) MarshalJSON() ([]byte, error) {
	bj := _BlockJson{
		Height: b.Height,
		Time: b.Time,
		Hash: b.Hash.String(),
		Body: hex.EncodeToString(b.Body),
	}
	if b.HasPrevHash() {
		prev := b.PrevHash.String()
		bj.PrevHash = &prev
	}
	return json.Marshal(bj)
}
