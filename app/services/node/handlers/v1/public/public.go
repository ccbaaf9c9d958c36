// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"fmt"
	"net/http"
	"time"

	v1 "github.com/chalkchain/chalkchain/business/web/v1"
	"github.com/chalkchain/chalkchain/foundation/events"
	"github.com/chalkchain/chalkchain/foundation/ledger/block"
	"github.com/chalkchain/chalkchain/foundation/ledger/state"
	"github.com/chalkchain/chalkchain/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of public ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// SubmitTransaction places a new transaction in the pending pool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var st submitTx
	if err := web.Decode(r, &st); err != nil {
		return err
	}

	tx := block.Tx{
		Sender:    st.Sender,
		Recipient: st.Recipient,
		Amount:    *st.Amount,
	}

	h.Log.Infow("add tran", "traceid", v.TraceID, "sender", tx.Sender, "recipient", tx.Recipient, "amount", tx.Amount)
	index, err := h.State.SubmitTransaction(tx)
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	resp := submitResp{
		Message: fmt.Sprintf("Transaction will be added to Block %d", index),
		Index:   index,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Mine runs the proof of work search against the last block and seals a new
// block carrying the pending pool plus the mining reward.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	b, err := h.State.Mine(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return v1.NewRequestError(err, http.StatusRequestTimeout)
		}
		return err
	}

	resp := mineResp{
		Message:      "New Block Forged",
		Index:        b.Index,
		Transactions: b.Transactions,
		Proof:        b.Proof,
		PrevHash:     b.PrevHash,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Chain returns the full chain and its length.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.RetrieveChain()

	resp := chainResp{
		Chain:  chain,
		Length: len(chain),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// RegisterPeers adds the specified node addresses to the known peer set.
func (h Handlers) RegisterPeers(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var rp registerPeers
	if err := web.Decode(r, &rp); err != nil {
		return err
	}

	for _, address := range rp.Nodes {
		if _, _, err := h.State.AddKnownPeer(address); err != nil {
			return v1.NewRequestError(fmt.Errorf("%w: %q", err, address), http.StatusBadRequest)
		}
	}

	// A new peer may hold a longer chain, get a consensus pass going.
	h.State.SignalResolve()

	var total []string
	for _, pr := range h.State.RetrieveKnownPeers() {
		total = append(total, pr.Host)
	}

	resp := registerResp{
		Message:    "New nodes have been added",
		TotalNodes: total,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Resolve runs the consensus algorithm against the known peers and reports
// whether the local chain was replaced.
func (h Handlers) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	replaced, err := h.State.ResolveConflicts(ctx)
	if err != nil {
		return err
	}

	message := "Our chain is authoritative"
	if replaced {
		message = "Our chain was replaced"
	}

	resp := resolveResp{
		Message: message,
		Chain:   h.State.RetrieveChain(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
