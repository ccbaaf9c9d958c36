// Package state is the core API for the ledger and implements all the
// business rules and processing.
package state

import (
	"errors"
	"sync"

	"github.com/chalkchain/chalkchain/foundation/ledger/block"
	"github.com/chalkchain/chalkchain/foundation/ledger/mempool"
	"github.com/chalkchain/chalkchain/foundation/ledger/peer"
)

// ErrEmptyChain is returned when an operation needs a last block and the
// chain has none. Construction always seals the genesis block, so this can
// only surface on a State built outside of New.
var ErrEmptyChain = errors.New("chain has no blocks")

// =============================================================================

// EventHandler defines a function that is called when events occur in the
// processing of the ledger.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by any
// package providing background support for the node.
type Worker interface {
	Shutdown()
	SignalResolve()
}

// =============================================================================

// Config represents the configuration required to start the ledger node.
type Config struct {
	NodeID     string
	Host       string
	KnownPeers *peer.Set
	EvHandler  EventHandler
}

// State manages the ledger for this node: the chain of sealed blocks, the
// pool of pending transactions, and the set of known peers. Chain mutations
// are serialized through the state mutex.
type State struct {
	mu     sync.Mutex
	mineMu sync.Mutex

	nodeID    string
	host      string
	evHandler EventHandler

	chain      []block.Block
	mempool    *mempool.Mempool
	knownPeers *peer.Set

	Worker Worker
}

// New constructs a new State for ledger management. The genesis block is
// sealed here so a last block always exists. The chain is process lifetime
// only; a fresh process always starts from a fresh genesis block.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewSet()
	}

	state := State{
		nodeID:     cfg.NodeID,
		host:       cfg.Host,
		evHandler:  ev,
		chain:      []block.Block{block.Genesis()},
		mempool:    mempool.New(),
		knownPeers: knownPeers,
	}

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}

// SignalResolve asks the background worker to run a consensus pass soon.
func (s *State) SignalResolve() {
	if s.Worker != nil {
		s.Worker.SignalResolve()
	}
}

// LastBlock returns the final block of the chain.
func (s *State) LastBlock() (block.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chain) == 0 {
		return block.Block{}, ErrEmptyChain
	}

	return s.chain[len(s.chain)-1], nil
}
