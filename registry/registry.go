package registry

import (
	"starchain/block"
	"starchain/chain"
	"starchain/ledger"
	"starchain/util"
	"starchain/util/log"
)

// SignatureVerifier decides whether signature proves that the owner of
// address signed exactly message.
type SignatureVerifier interface {
	VerifyMessage(message, address, signature string) bool
}

// Registry turns signed ownership claims into ledger blocks. It keeps no
// state between IssueChallenge and Submit: a challenge carries everything
// needed to check it.
type Registry struct {
	params *chain.ChainParams
	ledger *ledger.Ledger
	verifier SignatureVerifier
	clock util.Clock
	logger log.Logger
}

func NewRegistry(params *chain.ChainParams, l *ledger.Ledger, verifier SignatureVerifier,
		clock util.Clock, logger log.Logger) *Registry {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Registry{
		params: params.Clone(),
		ledger: l,
		verifier: verifier,
		clock: clock,
		logger: logger,
	}
}

// IssueChallenge returns the string address must sign, stamped with the
// current time.
func (r *Registry) IssueChallenge(address string) string {
	c := Challenge{
		Address: address,
		Timestamp: r.clock.NowSeconds(),
		Tag: r.params.DomainTag,
	}
	return c.String()
}

// Submit appends a claim of star by address once message is a fresh
// challenge for address and signature checks out. A message that is not
// shaped address:timestamp:tag, names another address, carries another
// domain tag or a timestamp ahead of the clock fails with
// ErrMalformedChallenge. On any error the ledger is left as it was.
func (r *Registry) Submit(address, message, signature string, star block.Star) (block.Block, error) {
	if err := r.checkChallenge(address, message); err != nil {
		r.logger.Info("Rejected claim", "addr", address, "err", err)
		return block.Block{}, err
	}

	if !r.verifier.VerifyMessage(message, address, signature) {
		err := ErrInvalidSignature{Address:address}
		r.logger.Info("Rejected claim", "addr", address, "err", err)
		return block.Block{}, err
	}

	b, err := block.NewBlock(block.ClaimPayload(block.BlockData{
		Message: message,
		WalletAddress: address,
		Star: star,
	}))
	if err != nil {
		return block.Block{}, err
	}

	stored := r.ledger.Append(b)
	r.logger.Info("Star claimed", "addr", address, "height", stored.Height, "hash", stored.Hash)
	return stored, nil
}

func (r *Registry) checkChallenge(address, message string) error {
	c, err := ParseChallenge(message)
	if err != nil {
		return err
	}

	if c.Address != address {
		return ErrMalformedChallenge{Message:message, Reason:"issued to another address"}
	}
	if c.Tag != r.params.DomainTag {
		return ErrMalformedChallenge{Message:message, Reason:"unknown domain tag"}
	}

	elapsed := r.clock.NowSeconds() - c.Timestamp
	if elapsed < 0 {
		return ErrMalformedChallenge{Message:message, Reason:"timestamp is in the future"}
	}
	if elapsed >= r.params.ChallengeWindow {
		return ErrExpiredChallenge{Elapsed:elapsed, Window:r.params.ChallengeWindow}
	}
	return nil
}
