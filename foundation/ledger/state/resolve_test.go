package state_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chalkchain/chalkchain/foundation/ledger/block"
	"github.com/chalkchain/chalkchain/foundation/ledger/state"
)

// mineBlocks grows the specified state by the specified number of blocks.
func mineBlocks(t *testing.T, st *state.State, howMany int) {
	t.Helper()

	for i := 0; i < howMany; i++ {
		if _, err := st.SubmitTransaction(block.Tx{Sender: "a", Recipient: "b", Amount: 1}); err != nil {
			t.Fatalf("\t%s\tShould be able to submit a transaction: %v", failed, err)
		}
		if _, err := st.Mine(context.Background()); err != nil {
			t.Fatalf("\t%s\tShould be able to mine a block: %v", failed, err)
		}
	}
}

// servePeerChain stands up a test server that answers the node to node chain
// route with the specified chain.
func servePeerChain(t *testing.T, chain []block.Block) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/node/chain", func(w http.ResponseWriter, r *http.Request) {
		pc := state.PeerChain{
			Chain:  chain,
			Length: len(chain),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(pc)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

// registerPeer adds the test server to the state's known peers.
func registerPeer(t *testing.T, st *state.State, srv *httptest.Server) {
	t.Helper()

	if _, _, err := st.AddKnownPeer(srv.URL); err != nil {
		t.Fatalf("\t%s\tShould be able to register the peer: %v", failed, err)
	}
}

// =============================================================================

func Test_ResolveConflicts(t *testing.T) {
	t.Log("Given the need to reconcile diverging chains across peers.")
	{
		t.Logf("\tTest 0:\tWhen a peer holds a longer valid chain.")
		{
			local := newState(t, "node-a")
			mineBlocks(t, local, 2)

			remote := newState(t, "node-b")
			mineBlocks(t, remote, 4)

			srv := servePeerChain(t, remote.RetrieveChain())
			registerPeer(t, local, srv)

			replaced, err := local.ResolveConflicts(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to resolve conflicts: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to resolve conflicts.", success)

			if !replaced {
				t.Fatalf("\t%s\tTest 0:\tShould replace the local chain.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould replace the local chain.", success)

			localChain := local.RetrieveChain()
			remoteChain := remote.RetrieveChain()
			if len(localChain) != len(remoteChain) {
				t.Fatalf("\t%s\tTest 0:\tShould adopt the peer's chain: got length %d exp %d", failed, len(localChain), len(remoteChain))
			}
			for i := range localChain {
				if localChain[i].Hash() != remoteChain[i].Hash() {
					t.Fatalf("\t%s\tTest 0:\tShould adopt the peer's chain exactly: block %d differs", failed, i)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould adopt the peer's chain exactly.", success)
		}

		t.Logf("\tTest 1:\tWhen the local chain is the longest.")
		{
			local := newState(t, "node-a")
			mineBlocks(t, local, 4)
			before := local.RetrieveChain()

			remote := newState(t, "node-b")
			mineBlocks(t, remote, 2)

			srv := servePeerChain(t, remote.RetrieveChain())
			registerPeer(t, local, srv)

			replaced, err := local.ResolveConflicts(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to resolve conflicts: %v", failed, err)
			}

			if replaced {
				t.Fatalf("\t%s\tTest 1:\tShould not replace the local chain.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould not replace the local chain.", success)

			after := local.RetrieveChain()
			if len(after) != len(before) || after[len(after)-1].Hash() != before[len(before)-1].Hash() {
				t.Fatalf("\t%s\tTest 1:\tShould leave the local chain untouched.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould leave the local chain untouched.", success)
		}

		t.Logf("\tTest 2:\tWhen a longer chain fails validation.")
		{
			local := newState(t, "node-a")
			mineBlocks(t, local, 1)

			remote := newState(t, "node-b")
			mineBlocks(t, remote, 4)

			corrupted := remote.RetrieveChain()
			corrupted[2].Proof++

			srv := servePeerChain(t, corrupted)
			registerPeer(t, local, srv)

			replaced, err := local.ResolveConflicts(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to resolve conflicts: %v", failed, err)
			}

			if replaced {
				t.Fatalf("\t%s\tTest 2:\tShould not adopt an invalid chain.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould not adopt an invalid chain.", success)
		}

		t.Logf("\tTest 3:\tWhen one longer chain is invalid and another is valid.")
		{
			local := newState(t, "node-a")
			mineBlocks(t, local, 1)

			remote := newState(t, "node-b")
			mineBlocks(t, remote, 3)

			corrupted := remote.RetrieveChain()
			corrupted[1].Proof++

			valid := newState(t, "node-c")
			mineBlocks(t, valid, 4)

			registerPeer(t, local, servePeerChain(t, corrupted))
			registerPeer(t, local, servePeerChain(t, valid.RetrieveChain()))

			replaced, err := local.ResolveConflicts(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 3:\tShould be able to resolve conflicts: %v", failed, err)
			}

			if !replaced {
				t.Fatalf("\t%s\tTest 3:\tShould adopt the valid longer chain.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould adopt the valid longer chain.", success)

			localChain := local.RetrieveChain()
			validChain := valid.RetrieveChain()
			if localChain[len(localChain)-1].Hash() != validChain[len(validChain)-1].Hash() {
				t.Fatalf("\t%s\tTest 3:\tShould hold the valid peer's chain.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould hold the valid peer's chain.", success)
		}

		t.Logf("\tTest 4:\tWhen a peer is unreachable.")
		{
			local := newState(t, "node-a")
			if _, _, err := local.AddKnownPeer("127.0.0.1:1"); err != nil {
				t.Fatalf("\t%s\tTest 4:\tShould be able to register the peer: %v", failed, err)
			}

			replaced, err := local.ResolveConflicts(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 4:\tShould not escalate peer failures: %v", failed, err)
			}

			if replaced {
				t.Fatalf("\t%s\tTest 4:\tShould leave the local chain untouched.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould silently skip the unreachable peer.", success)
		}

		t.Logf("\tTest 5:\tWhen a peer holds a valid chain of equal length.")
		{
			local := newState(t, "node-a")
			mineBlocks(t, local, 2)
			before := local.RetrieveChain()

			remote := newState(t, "node-b")
			mineBlocks(t, remote, 2)

			srv := servePeerChain(t, remote.RetrieveChain())
			registerPeer(t, local, srv)

			replaced, err := local.ResolveConflicts(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 5:\tShould be able to resolve conflicts: %v", failed, err)
			}

			if replaced {
				t.Fatalf("\t%s\tTest 5:\tShould not adopt an equal length chain.", failed)
			}
			t.Logf("\t%s\tTest 5:\tShould not adopt an equal length chain.", success)

			after := local.RetrieveChain()
			if len(after) != len(before) || after[len(after)-1].Hash() != before[len(before)-1].Hash() {
				t.Fatalf("\t%s\tTest 5:\tShould leave the local chain untouched.", failed)
			}
			t.Logf("\t%s\tTest 5:\tShould leave the local chain untouched.", success)
		}
	}
}

func Test_ResolveDuringMining(t *testing.T) {
	t.Log("Given the need to keep consensus honest while blocks are being mined.")
	{
		t.Logf("\tTest 0:\tWhen the local chain outgrows a candidate mid fetch.")
		{
			local := newState(t, "node-a")

			remote := newState(t, "node-b")
			mineBlocks(t, remote, 2)
			candidate := remote.RetrieveChain()

			// The peer answers slowly: by the time the candidate arrives,
			// mining has pushed the local chain past it.
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/node/chain", func(w http.ResponseWriter, r *http.Request) {
				for i := 0; i < 4; i++ {
					if _, err := local.SubmitTransaction(block.Tx{Sender: "a", Recipient: "b", Amount: 1}); err != nil {
						t.Errorf("\t%s\tTest 0:\tShould be able to submit a transaction: %v", failed, err)
						return
					}
					if _, err := local.Mine(context.Background()); err != nil {
						t.Errorf("\t%s\tTest 0:\tShould be able to mine a block: %v", failed, err)
						return
					}
				}

				pc := state.PeerChain{
					Chain:  candidate,
					Length: len(candidate),
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(pc)
			})

			srv := httptest.NewServer(mux)
			t.Cleanup(srv.Close)
			registerPeer(t, local, srv)

			replaced, err := local.ResolveConflicts(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to resolve conflicts: %v", failed, err)
			}

			if replaced {
				t.Fatalf("\t%s\tTest 0:\tShould not adopt a chain the local chain outgrew.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not adopt a chain the local chain outgrew.", success)

			chain := local.RetrieveChain()
			if len(chain) <= len(candidate) {
				t.Fatalf("\t%s\tTest 0:\tShould keep the longer local chain: got %d exp > %d", failed, len(chain), len(candidate))
			}
			t.Logf("\t%s\tTest 0:\tShould keep the longer local chain.", success)

			if !block.IsValid(chain) {
				t.Fatalf("\t%s\tTest 0:\tShould leave the chain valid.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the chain valid.", success)
		}
	}
}
