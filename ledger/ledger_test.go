package ledger

import (
	"starchain/block"
	"starchain/ec"
	"starchain/util"
	"starchain/util/log"

	"errors"
	"fmt"
	"sync"
	"testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(now int64) (*Ledger, *util.ManualClock) {
	clock := util.NewManualClock(now)
	return NewLedger(clock, log.TestingLogger()), clock
}

func claimBlock(t *testing.T, owner string, story string) *block.Block {
	b, err := block.NewBlock(block.ClaimPayload(block.BlockData{
		Message: owner + ":1000:starRegistry",
		WalletAddress: owner,
		Star: block.Star{Declination:"5", RightAscension:"10", Story:story},
	}))
	require.NoError(t, err)
	return b
}

func TestGenesis(t *testing.T) {
	l, _ := newTestLedger(1000)
	require.Equal(t, int64(0), l.Height())

	g, err := l.BlockByHeight(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), g.Height)
	assert.Equal(t, int64(1000), g.Time)
	assert.False(t, g.HasPrevHash())
	assert.True(t, g.Validate())

	p, err := g.DecodedBody()
	require.NoError(t, err)
	assert.Equal(t, block.GENESIS_DATA, p.Genesis.Data)

	// a second initialization is a no-op
	l.Initialize()
	assert.Equal(t, int64(0), l.Height())
	assert.Equal(t, g, l.Latest())
}

func TestEmptyLedgerHeight(t *testing.T) {
	l := &Ledger{}
	assert.Equal(t, int64(-1), l.Height())
}

func TestAppendAssignsLinkage(t *testing.T) {
	l, clock := newTestLedger(1000)

	const N = 10
	for i := 1; i <= N; i++ {
		clock.Advance(7)
		in := claimBlock(t, "addrA", fmt.Sprintf("star %d", i))
		out := l.Append(in)

		assert.Equal(t, int64(i), out.Height)
		assert.Equal(t, clock.NowSeconds(), out.Time)
		assert.True(t, out.Validate())
		assert.Equal(t, int64(0), in.Height, "Append must not touch its argument")
	}
	require.Equal(t, int64(N), l.Height())

	for h := int64(1); h <= N; h++ {
		b, err := l.BlockByHeight(h)
		require.NoError(t, err)
		prev, err := l.BlockByHeight(h-1)
		require.NoError(t, err)
		assert.Equal(t, h, b.Height)
		assert.Equal(t, prev.Hash, b.PrevHash)
	}

	assert.Empty(t, l.ValidateChain())
}

func TestConcurrentAppends(t *testing.T) {
	l, _ := newTestLedger(1000)

	const N = 64
	blocks := make([]*block.Block, N)
	for i := range blocks {
		blocks[i] = claimBlock(t, "addrA", fmt.Sprintf("star %d", i))
	}

	var wg sync.WaitGroup
	for i := 0; i < N; i++ {
		wg.Add(1)
		go func(b *block.Block) {
			defer wg.Done()
			l.Append(b)
		}(blocks[i])
	}

	// readers run alongside the writers
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Empty(t, l.ValidateChain())
			_, err := l.StarsByOwner("addrA")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, int64(N), l.Height())
	seen := make(map[int64]bool)
	for h := int64(0); h <= N; h++ {
		b, err := l.BlockByHeight(h)
		require.NoError(t, err)
		assert.False(t, seen[b.Height])
		seen[b.Height] = true
	}
	assert.Empty(t, l.ValidateChain())
}

func TestLookupNotFound(t *testing.T) {
	l, _ := newTestLedger(1000)
	b := l.Append(claimBlock(t, "addrA", "x"))

	got, err := l.BlockByHash(b.Hash.String())
	require.NoError(t, err)
	assert.Equal(t, b, got)

	for _, h := range []int64{-1, 2, 100} {
		_, err := l.BlockByHeight(h)
		assert.True(t, errors.Is(err, ErrNotFound), "height %d", h)
		assert.Equal(t, ErrUnknownBlock{Height:h}, err)
	}

	missing := ec.Sum256([]byte("nothing")).String()
	for _, h := range []string{missing, "", "zz", b.Hash.String()[:10]} {
		_, err := l.BlockByHash(h)
		assert.True(t, errors.Is(err, ErrNotFound), "hash %q", h)
	}
}

func TestReturnedBlocksAreCopies(t *testing.T) {
	l, _ := newTestLedger(1000)
	b := l.Append(claimBlock(t, "addrA", "x"))
	b.Body[0] ^= 0xff
	b.Hash[0] ^= 0xff

	stored, err := l.BlockByHeight(1)
	require.NoError(t, err)
	assert.True(t, stored.Validate())
	assert.Empty(t, l.ValidateChain())
}

func TestStarsByOwner(t *testing.T) {
	l, _ := newTestLedger(1000)
	l.Append(claimBlock(t, "A", "first"))
	l.Append(claimBlock(t, "B", "other"))
	l.Append(claimBlock(t, "A", "second"))

	owned, err := l.StarsByOwner("A")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "A", owned[0].Owner)
	assert.Equal(t, "first", owned[0].Star.Story)
	assert.Equal(t, "A", owned[1].Owner)
	assert.Equal(t, "second", owned[1].Star.Story)

	owned, err = l.StarsByOwner("B")
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	owned, err = l.StarsByOwner("nobody")
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestStarsByOwnerSkipsGenesisByPosition(t *testing.T) {
	l, _ := newTestLedger(1000)
	l.Append(claimBlock(t, "A", "first"))
	l.blocks[0].Height = 7

	owned, err := l.StarsByOwner("A")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "first", owned[0].Star.Story)
	assert.NotEmpty(t, l.ValidateChain())
}

func TestValidateChainReportsEverything(t *testing.T) {
	l, _ := newTestLedger(1000)
	for i := 0; i < 4; i++ {
		l.Append(claimBlock(t, "A", fmt.Sprintf("%d", i)))
	}
	root := l.Root()

	// tamper with the stored content of block 1 without resealing it
	l.blocks[1].Body = claimBlock(t, "B", "stolen").Body

	// reseal block 3 on top of a forged previous hash
	l.blocks[3].PrevHash = ec.Sum256([]byte("forged"))
	l.blocks[3].Hash = l.blocks[3].ComputeHash()

	errs := l.ValidateChain()
	require.Len(t, errs, 3)

	assert.Equal(t, int64(1), errs[0].(ErrBlockHashMismatch).Height)

	// block 4 still links to block 3's new hash, block 3 links nowhere
	link := errs[1].(ErrBrokenLink)
	assert.Equal(t, int64(3), link.Height)
	assert.Equal(t, int64(2), link.PrevHeight)
	assert.Equal(t, l.blocks[2].Hash, link.Expected)

	link = errs[2].(ErrBrokenLink)
	assert.Equal(t, int64(4), link.Height)

	// validation never repairs anything and the ledger stays readable
	assert.Len(t, l.ValidateChain(), 3)
	assert.Equal(t, int64(4), l.Height())
	assert.NotEqual(t, root, l.Root())
}

func TestRoot(t *testing.T) {
	l, _ := newTestLedger(1000)
	g := l.Latest()
	assert.Equal(t, g.Hash, l.Root())

	l.Append(claimBlock(t, "A", "x"))
	assert.NotEqual(t, g.Hash, l.Root())
}

func TestAppendNilPanics(t *testing.T) {
	l, _ := newTestLedger(1000)
	assert.Panics(t, func() { l.Append(nil) })
}
