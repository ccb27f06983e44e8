package chain

import (
	"fmt"
	"strings"
)

const DEFAULT_CHALLENGE_WINDOW = 300
const DEFAULT_DOMAIN_TAG = "starRegistry"
const MAX_CHALLENGE_WINDOW = 24*3600

// ChainParams holds the rules that decide whether a claim may be appended.
type ChainParams struct {
	// A signed challenge must be strictly younger than this many seconds.
	ChallengeWindow int64

	// Last field of every challenge string.
	DomainTag string
}

// DefaultChainParams returns a default ChainParams.
func DefaultChainParams() *ChainParams {
	return &ChainParams{
		ChallengeWindow: DEFAULT_CHALLENGE_WINDOW,
		DomainTag: DEFAULT_DOMAIN_TAG,
	}
}

// Validate validates the ChainParams to ensure all values
// are within their allowed limits, and returns an error if they are not.
func (pms *ChainParams) Validate() error {
	if pms.ChallengeWindow <= 0 {
		return fmt.Errorf("ChallengeWindow must be greater than 0. Got %d", pms.ChallengeWindow)
	}
	if pms.ChallengeWindow > MAX_CHALLENGE_WINDOW {
		return fmt.Errorf("ChallengeWindow (%d) is too big. Must not be greater than %d",
				pms.ChallengeWindow, MAX_CHALLENGE_WINDOW)
	}
	if pms.DomainTag == "" {
		return fmt.Errorf("DomainTag must not be empty")
	}
	if strings.ContainsRune(pms.DomainTag, ':') {
		return fmt.Errorf("DomainTag %q must not contain ':'", pms.DomainTag)
	}
	return nil
}

func (pms *ChainParams) Clone() *ChainParams {
	pms2 := *pms
	return &pms2
}
