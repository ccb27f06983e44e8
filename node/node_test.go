package node

import (
	"starchain/block"
	"starchain/cfg"
	"starchain/ec"
	"starchain/ledger"
	"starchain/registry"
	"starchain/util"
	"starchain/util/log"

	"errors"
	"testing"
	"time"
	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeStartStop(t *testing.T) {
	defer leaktest.CheckTimeout(t, 3*time.Second)()

	config := cfg.ResetTestRoot()
	config.Audit.Interval = 1

	n, err := NewNode(config, log.TestingLogger())
	require.NoError(t, err, "expected no err on NewNode")
	require.NoError(t, n.Start())
	assert.True(t, n.IsRunning())

	go func() {
		n.Stop()
	}()

	select {
	case <-n.C4Quit():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shutdown")
	}
}

func TestNewNodeRejectsBadConfig(t *testing.T) {
	config := cfg.ResetTestRoot()
	config.Chain.ChallengeWindow = 0
	_, err := NewNode(config, nil)
	assert.Error(t, err)
}

func TestNodeContract(t *testing.T) {
	clock := util.NewManualClock(1000)
	n, err := newNode(cfg.ResetTestRoot(), clock, ec.MessageVerifier{}, log.TestingLogger())
	require.NoError(t, err)
	require.Equal(t, int64(0), n.Height())

	key := ec.NewPrivKey()
	addr := key.Address().String()

	msg := n.IssueChallenge(addr)
	sig, err := ec.SignText(key, msg)
	require.NoError(t, err)

	clock.Set(1100)
	star := block.Star{Declination:"5", RightAscension:"10", Story:"test"}
	b, err := n.Submit(addr, msg, sig, star)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.Height())

	byHash, err := n.BlockByHash(b.Hash.String())
	require.NoError(t, err)
	byHeight, err := n.BlockByHeight(1)
	require.NoError(t, err)
	assert.Equal(t, byHash, byHeight)

	_, err = n.BlockByHeight(2)
	assert.True(t, errors.Is(err, ledger.ErrNotFound))

	owned, err := n.StarsByOwner(addr)
	require.NoError(t, err)
	assert.Equal(t, []block.Ownership{{Owner:addr, Star:star}}, owned)

	assert.Empty(t, n.ValidateChain())
	assert.Equal(t, 0, n.audit())

	clock.Set(2000)
	_, err = n.Submit(addr, msg, sig, star)
	assert.IsType(t, registry.ErrExpiredChallenge{}, err)
	assert.Equal(t, int64(1), n.Height())
}
