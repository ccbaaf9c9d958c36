// Package peer maintains the set of known peer nodes. Peers are known only
// by manual registration; there is no liveness or trust verification.
package peer

import (
	"errors"
	"net/url"
	"strings"
	"sync"
)

// ErrInvalidAddress indicates a peer registration string could not be
// reduced to a non-empty host.
var ErrInvalidAddress = errors.New("invalid peer address")

// Peer represents information about a node in the network.
type Peer struct {
	Host string
}

// New constructs a new peer value.
func New(host string) Peer {
	return Peer{
		Host: host,
	}
}

// Match validates if the specified host matches this peer.
func (p Peer) Match(host string) bool {
	return p.Host == host
}

// Parse reduces a peer registration string to its host component. A full URL
// like "http://192.168.0.5:5000" and a bare "192.168.0.5:5000" are both
// accepted; the scheme is stripped either way.
func Parse(address string) (Peer, error) {

	// A bare host:port carries no scheme and url.Parse rejects the colon in
	// the first path segment, so make the address scheme relative first.
	if !strings.Contains(address, "//") {
		address = "//" + address
	}

	u, err := url.Parse(address)
	if err != nil {
		return Peer{}, ErrInvalidAddress
	}

	switch {
	case u.Host != "":
		return New(u.Host), nil
	case u.Path != "":
		return New(u.Path), nil
	}

	return Peer{}, ErrInvalidAddress
}

// =============================================================================

// Status represents information about the state of any given peer.
type Status struct {
	LatestBlockHash  string `json:"latest_block_hash"`
	LatestBlockIndex uint64 `json:"latest_block_index"`
	KnownPeers       []Peer `json:"known_peers"`
}

// =============================================================================

// Set represents the data representation to maintain a set of known peers.
// The set only grows; a registered peer is never forgotten for the life of
// the process.
type Set struct {
	mu  sync.RWMutex
	set map[Peer]struct{}
}

// NewSet constructs a new set to manage node peer information.
func NewSet() *Set {
	return &Set{
		set: make(map[Peer]struct{}),
	}
}

// Add adds a new peer to the set and reports whether it was not
// already present.
func (ps *Set) Add(peer Peer) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, exists := ps.set[peer]; !exists {
		ps.set[peer] = struct{}{}
		return true
	}

	return false
}

// Count returns the number of peers in the set.
func (ps *Set) Count() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return len(ps.set)
}

// Copy returns a list of the known peers, excluding the specified host.
func (ps *Set) Copy(host string) []Peer {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	var peers []Peer
	for peer := range ps.set {
		if !peer.Match(host) {
			peers = append(peers, peer)
		}
	}

	return peers
}
