package node

import (
	"starchain/block"
	"starchain/cfg"
	"starchain/ec"
	"starchain/ledger"
	"starchain/registry"
	"starchain/util"
	"starchain/util/log"
	"starchain/version"

	"time"
)

// Node is the highest level interface to a star registry.
// It owns the ledger and the registry and exposes the operations a
// transport would serve.
type Node struct {
	util.BaseService

	config *cfg.Config

	ledger *ledger.Ledger
	registry *registry.Registry
}

// NewNode returns a new, ready to go, Node. The ledger already holds
// its genesis block.
func NewNode(config *cfg.Config, logger log.Logger) (*Node, error) {
	return newNode(config, util.SystemClock{}, ec.MessageVerifier{}, logger)
}

func newNode(config *cfg.Config, clock util.Clock, verifier registry.SignatureVerifier, logger log.Logger) (*Node, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	l := ledger.NewLedger(clock, logger.With("module", "ledger"))
	r := registry.NewRegistry(config.Chain, l, verifier, clock, logger.With("module", "registry"))

	node := &Node{
		config: config,
		ledger: l,
		registry: r,
	}
	node.BaseService.Init(logger, "Node", node)
	node.Logger.Info("Node created", "chain", config.ChainId, "version", version.Version)
	return node, nil
}

// OnStart starts the Node. It implements util.Service.
func (n *Node) OnStart() error {
	if n.config.Audit != nil && n.config.Audit.Interval > 0 {
		go n.auditRoutine(time.Duration(n.config.Audit.Interval) * time.Second)
	}
	return nil
}

// OnStop stops the Node. It implements util.Service.
func (n *Node) OnStop() {
	n.Logger.Info("Stopping Node", "height", n.ledger.Height())
}

func (n *Node) auditRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n.audit()
		case <-n.C4Quit():
			return
		}
	}
}

// audit runs ValidateChain once and logs the outcome.
func (n *Node) audit() int {
	errs := n.ledger.ValidateChain()
	for _, err := range errs {
		n.Logger.Error("Chain integrity violation", "err", err)
	}
	n.Logger.Info("Chain audited", "height", n.ledger.Height(), "root", n.ledger.Root(), "violations", len(errs))
	return len(errs)
}

func (n *Node) Config() *cfg.Config {
	return n.config
}

func (n *Node) Ledger() *ledger.Ledger {
	return n.ledger
}

func (n *Node) Height() int64 {
	return n.ledger.Height()
}

func (n *Node) IssueChallenge(address string) string {
	return n.registry.IssueChallenge(address)
}

func (n *Node) Submit(address, message, signature string, star block.Star) (block.Block, error) {
	return n.registry.Submit(address, message, signature, star)
}

func (n *Node) BlockByHash(hash string) (block.Block, error) {
	return n.ledger.BlockByHash(hash)
}

func (n *Node) BlockByHeight(height int64) (block.Block, error) {
	return n.ledger.BlockByHeight(height)
}

func (n *Node) StarsByOwner(address string) ([]block.Ownership, error) {
	return n.ledger.StarsByOwner(address)
}

// ValidateChain describes every integrity violation; empty means valid.
func (n *Node) ValidateChain() []string {
	errs := n.ledger.ValidateChain()
	descs := make([]string, len(errs))
	for i, err := range errs {
		descs[i] = err.Error()
	}
	return descs
}
