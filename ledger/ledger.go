package ledger

import (
	"starchain/block"
	"starchain/ec"
	"starchain/merkle"
	"starchain/util"
	"starchain/util/log"

	"sync"
)

// Ledger is the append-only chain of blocks. It owns the sequence;
// callers only ever see copies.
//
// Append holds the write lock from reading the tail to pushing the new
// block, so concurrent appends can never claim the same height.
type Ledger struct {
	mtx sync.RWMutex
	blocks []block.Block

	clock util.Clock
	logger log.Logger
}

// NewLedger returns a ledger that already holds its genesis block.
func NewLedger(clock util.Clock, logger log.Logger) *Ledger {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	l := &Ledger{
		clock: clock,
		logger: logger,
	}
	l.Initialize()
	return l
}

// Initialize appends the genesis block if and only if the ledger is empty.
func (l *Ledger) Initialize() {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if len(l.blocks) == 0 {
		g := l.appendLocked(block.NewGenesisBlock())
		l.logger.Info("Created genesis block", "hash", g.Hash, "time", g.Time)
	}
}

// Height is the index of the tail block, -1 for an empty ledger.
func (l *Ledger) Height() int64 {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return int64(len(l.blocks)) - 1
}

// Append stamps b with its height, time, previous hash and hash and puts
// it at the tail. The content is not checked; b is expected to come from
// an authenticated submission. b itself is left untouched.
func (l *Ledger) Append(b *block.Block) block.Block {
	if b == nil {
		panic("Ledger can only append a non-nil block")
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	stored := l.appendLocked(b)
	l.logger.Debug("Appended block", "height", stored.Height, "hash", stored.Hash)
	return stored.Clone()
}

func (l *Ledger) appendLocked(b *block.Block) *block.Block {
	nb := b.Clone()
	nb.Height = int64(len(l.blocks))
	nb.Time = l.clock.NowSeconds()
	nb.PrevHash = ec.Hash256{}
	if len(l.blocks) > 0 {
		nb.PrevHash = l.blocks[len(l.blocks)-1].Hash
	}
	nb.Hash = nb.ComputeHash()

	l.blocks = append(l.blocks, nb)
	return &l.blocks[len(l.blocks)-1]
}

// BlockByHash returns the first block whose hash is the given hex string.
func (l *Ledger) BlockByHash(hash string) (block.Block, error) {
	h, err := ec.HexToHash256(hash)
	if err != nil {
		return block.Block{}, ErrUnknownHash{Hash:hash}
	}

	l.mtx.RLock()
	defer l.mtx.RUnlock()

	for i := range l.blocks {
		if l.blocks[i].Hash == h {
			return l.blocks[i].Clone(), nil
		}
	}
	return block.Block{}, ErrUnknownHash{Hash:hash}
}

// BlockByHeight returns the block at height, or ErrUnknownBlock.
func (l *Ledger) BlockByHeight(height int64) (block.Block, error) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	if height < 0 || height >= int64(len(l.blocks)) {
		return block.Block{}, ErrUnknownBlock{Height:height}
	}
	return l.blocks[height].Clone(), nil
}

// Latest returns the tail block.
func (l *Ledger) Latest() block.Block {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	util.Assert(len(l.blocks) > 0)
	return l.blocks[len(l.blocks)-1].Clone()
}

// StarsByOwner lists the stars claimed by address, in chain order.
// The genesis block is never considered.
func (l *Ledger) StarsByOwner(address string) ([]block.Ownership, error) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	owned := []block.Ownership{}
	for i := range l.blocks {
		b := &l.blocks[i]
		if i == 0 {
			continue
		}

		claim, err := b.Claim()
		if err != nil {
			return nil, err
		}
		if claim.WalletAddress == address {
			owned = append(owned, block.Ownership{Owner:claim.WalletAddress, Star:claim.Star})
		}
	}
	return owned, nil
}

// ValidateChain checks every block's own hash and its link to the block
// before it. Problems are reported by position in the sequence. It
// reports every problem it finds and never changes the ledger; an empty
// result means the chain is intact.
func (l *Ledger) ValidateChain() []error {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	var errs []error
	for i := range l.blocks {
		b := &l.blocks[i]
		if computed := b.ComputeHash(); computed != b.Hash {
			errs = append(errs, ErrBlockHashMismatch{Height:int64(i), Stored:b.Hash, Computed:computed})
		}

		if i > 0 {
			prev := &l.blocks[i-1]
			if b.PrevHash != prev.Hash {
				errs = append(errs, ErrBrokenLink{
					Height: int64(i),
					PrevHash: b.PrevHash,
					PrevHeight: int64(i-1),
					Expected: prev.Hash,
				})
			}
		}
	}
	return errs
}

// Root is the Merkle root over all block hashes in height order.
func (l *Ledger) Root() ec.Hash256 {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	hashes := make([]ec.Hash256, len(l.blocks))
	for i := range l.blocks {
		hashes[i] = l.blocks[i].Hash
	}
	return merkle.RootOfHashes(hashes)
}
