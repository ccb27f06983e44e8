package block

// Star is the claimed object. Its fields are opaque to the ledger.
type Star struct {
	Declination string	`json:"dec"`
	RightAscension string	`json:"ra"`
	Story string		`json:"story"`
}

// BlockData is an authenticated claim: the signed challenge, the wallet
// that signed it and the star being claimed.
type BlockData struct {
	Message string		`json:"message"`
	WalletAddress string	`json:"walletAddress"`
	Star Star		`json:"star"`
}

type Ownership struct {
	Owner string	`json:"owner"`
	Star Star	`json:"star"`
}
