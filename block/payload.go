package block

import (
	"fmt"
	"halftwo/mangos/vbs"
	"halftwo/mangos/xerr"
)

const GENESIS_DATA = "Genesis Block"

type PayloadKind byte

const (
	PAYLOAD_GENESIS PayloadKind = 'G'
	PAYLOAD_CLAIM PayloadKind = 'C'
)

func (k PayloadKind) String() string {
	switch k {
	case PAYLOAD_GENESIS:
		return "genesis"
	case PAYLOAD_CLAIM:
		return "claim"
	}
	return fmt.Sprintf("unknown(%#x)", byte(k))
}

type GenesisData struct {
	Data string
}

// Payload is what a Block body carries: either the genesis sentinel or a
// claim. Kind says which of the two fields is meaningful.
type Payload struct {
	Kind PayloadKind
	Genesis GenesisData
	Claim BlockData
}

func GenesisPayload() Payload {
	return Payload{Kind:PAYLOAD_GENESIS, Genesis:GenesisData{Data:GENESIS_DATA}}
}

func ClaimPayload(data BlockData) Payload {
	return Payload{Kind:PAYLOAD_CLAIM, Claim:data}
}

// records as they are laid out in vbs
type _GenesisRecord struct {
	Data string
}

type _ClaimRecord struct {
	Message string
	WalletAddress string
	Declination string
	RightAscension string
	Story string
}

// Encode lays the payload out as one kind byte followed by the
// vbs-encoded record.
func (p Payload) Encode() ([]byte, error) {
	var record interface{}
	switch p.Kind {
	case PAYLOAD_GENESIS:
		record = _GenesisRecord{Data:p.Genesis.Data}
	case PAYLOAD_CLAIM:
		record = _ClaimRecord{
			Message: p.Claim.Message,
			WalletAddress: p.Claim.WalletAddress,
			Declination: p.Claim.Star.Declination,
			RightAscension: p.Claim.Star.RightAscension,
			Story: p.Claim.Star.Story,
		}
	default:
		return nil, ErrUnknownPayload{Kind:p.Kind}
	}

	bz, err := vbs.Marshal(record)
	if err != nil {
		return nil, xerr.Tracef(err, "Error marshaling %s payload", p.Kind)
	}
	return append([]byte{byte(p.Kind)}, bz...), nil
}

func DecodePayload(body []byte) (p Payload, err error) {
	if len(body) == 0 {
		err = ErrEmptyBody{}
		return
	}

	p.Kind = PayloadKind(body[0])
	switch p.Kind {
	case PAYLOAD_GENESIS:
		var rec _GenesisRecord
		if err = vbs.Unmarshal(body[1:], &rec); err != nil {
			err = xerr.Trace(err, "Error unmarshaling genesis payload")
			return
		}
		p.Genesis = GenesisData{Data:rec.Data}
	case PAYLOAD_CLAIM:
		var rec _ClaimRecord
		if err = vbs.Unmarshal(body[1:], &rec); err != nil {
			err = xerr.Trace(err, "Error unmarshaling claim payload")
			return
		}
		p.Claim = BlockData{
			Message: rec.Message,
			WalletAddress: rec.WalletAddress,
			Star: Star{
				Declination: rec.Declination,
				RightAscension: rec.RightAscension,
				Story: rec.Story,
			},
		}
	default:
		err = ErrUnknownPayload{Kind:p.Kind}
	}
	return
}
