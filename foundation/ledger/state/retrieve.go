package state

import (
	"github.com/chalkchain/chalkchain/foundation/ledger/block"
	"github.com/chalkchain/chalkchain/foundation/ledger/peer"
)

// RetrieveNodeID returns the identity of this node, the address mining
// rewards are credited to.
func (s *State) RetrieveNodeID() string {
	return s.nodeID
}

// RetrieveHost returns a copy of host information.
func (s *State) RetrieveHost() string {
	return s.host
}

// RetrieveChain returns a copy of the current chain.
func (s *State) RetrieveChain() []block.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain := make([]block.Block, len(s.chain))
	copy(chain, s.chain)

	return chain
}

// ChainLength returns the current number of blocks in the chain.
func (s *State) ChainLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.chain)
}

// RetrieveMempool returns a copy of the pending transaction pool.
func (s *State) RetrieveMempool() []block.Tx {
	return s.mempool.Copy()
}

// RetrieveKnownPeers retrieves a copy of the known peer list, excluding
// this node.
func (s *State) RetrieveKnownPeers() []peer.Peer {
	return s.knownPeers.Copy(s.host)
}

// AddKnownPeer parses a peer registration address and adds it to the set of
// known peers. It reports whether the peer was not already known.
func (s *State) AddKnownPeer(address string) (peer.Peer, bool, error) {
	pr, err := peer.Parse(address)
	if err != nil {
		return peer.Peer{}, false, err
	}

	added := s.knownPeers.Add(pr)
	if added {
		s.evHandler("state: AddKnownPeer: registered peer[%s]", pr.Host)
	}

	return pr, added, nil
}
