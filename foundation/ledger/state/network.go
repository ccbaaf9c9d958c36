package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chalkchain/chalkchain/foundation/ledger/block"
	"github.com/chalkchain/chalkchain/foundation/ledger/peer"
)

const baseURL = "http://%s/v1/node"

// peerTimeout bounds any single peer exchange so one dead peer can't stall
// a consensus pass.
const peerTimeout = 5 * time.Second

// PeerChain is the wire format for the chain exchange between nodes. The
// block serialization must reproduce the exact field set so the receiving
// node recomputes the identical digests.
type PeerChain struct {
	Chain  []block.Block `json:"chain"`
	Length int           `json:"length"`
}

// NetRequestPeerChain fetches the full chain of the specified peer along
// with its reported length.
func (s *State) NetRequestPeerChain(ctx context.Context, pr peer.Peer) (PeerChain, error) {
	s.evHandler("state: NetRequestPeerChain: started: %s", pr.Host)
	defer s.evHandler("state: NetRequestPeerChain: completed: %s", pr.Host)

	url := fmt.Sprintf("%s/chain", fmt.Sprintf(baseURL, pr.Host))

	var pc PeerChain
	if err := send(ctx, http.MethodGet, url, nil, &pc); err != nil {
		return PeerChain{}, err
	}

	return pc, nil
}

// NetRequestPeerStatus retrieves the status of the specified peer.
func (s *State) NetRequestPeerStatus(ctx context.Context, pr peer.Peer) (peer.Status, error) {
	s.evHandler("state: NetRequestPeerStatus: started: %s", pr.Host)
	defer s.evHandler("state: NetRequestPeerStatus: completed: %s", pr.Host)

	url := fmt.Sprintf("%s/status", fmt.Sprintf(baseURL, pr.Host))

	var ps peer.Status
	if err := send(ctx, http.MethodGet, url, nil, &ps); err != nil {
		return peer.Status{}, err
	}

	return ps, nil
}

// =============================================================================

// send is a helper function to send an HTTP request to a node.
func send(ctx context.Context, method string, url string, dataSend any, dataRecv any) error {
	ctx, cancel := context.WithTimeout(ctx, peerTimeout)
	defer cancel()

	var req *http.Request

	switch {
	case dataSend != nil:
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		req, err = http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
		if err != nil {
			return err
		}

	default:
		var err error
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return err
		}
	}

	var client http.Client
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return errors.New(string(msg))
	}

	if dataRecv != nil {
		if err := json.NewDecoder(resp.Body).Decode(dataRecv); err != nil {
			return err
		}
	}

	return nil
}
