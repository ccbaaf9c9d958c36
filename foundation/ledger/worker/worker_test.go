package worker_test

import (
	"testing"
	"time"

	"github.com/chalkchain/chalkchain/foundation/ledger/state"
	"github.com/chalkchain/chalkchain/foundation/ledger/worker"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Lifecycle(t *testing.T) {
	t.Log("Given the need to run and stop the background worker.")
	{
		t.Logf("\tTest 0:\tWhen starting and shutting down.")
		{
			st, err := state.New(state.Config{
				NodeID: "node-a",
				Host:   "test:0",
			})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct state: %v", failed, err)
			}

			worker.Run(st, time.Hour, nil)

			if st.Worker == nil {
				t.Fatalf("\t%s\tTest 0:\tShould register itself with the state.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould register itself with the state.", success)

			// A signal with no peers runs a pass that finds nothing.
			st.SignalResolve()

			st.Worker.Shutdown()
			t.Logf("\t%s\tTest 0:\tShould shut down cleanly.", success)
		}
	}
}
