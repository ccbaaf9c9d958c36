// Package private maintains the group of handlers for node to node access.
package private

import (
	"context"
	"net/http"

	"github.com/chalkchain/chalkchain/foundation/ledger/peer"
	"github.com/chalkchain/chalkchain/foundation/ledger/state"
	"github.com/chalkchain/chalkchain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node to node endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Chain serves the full chain in the wire format consumed by a resolving
// peer. The block serialization round trips, so the peer recomputes the
// digests this node produced.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.RetrieveChain()

	pc := state.PeerChain{
		Chain:  chain,
		Length: len(chain),
	}

	return web.Respond(ctx, w, pc, http.StatusOK)
}

// Status returns the current status of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	last, err := h.State.LastBlock()
	if err != nil {
		return err
	}

	status := peer.Status{
		LatestBlockHash:  last.Hash(),
		LatestBlockIndex: last.Index,
		KnownPeers:       h.State.RetrieveKnownPeers(),
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}
