package mempool_test

import (
	"testing"

	"github.com/chalkchain/chalkchain/foundation/ledger/block"
	"github.com/chalkchain/chalkchain/foundation/ledger/mempool"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Mempool(t *testing.T) {
	txs := []block.Tx{
		{Sender: "a", Recipient: "b", Amount: 5},
		{Sender: "b", Recipient: "c", Amount: 2},
		{Sender: "c", Recipient: "a", Amount: 1},
	}

	t.Log("Given the need to manage the pending transaction pool.")
	{
		t.Logf("\tTest 0:\tWhen appending and draining transactions.")
		{
			mp := mempool.New()

			for i, tx := range txs {
				if count := mp.Append(tx); count != i+1 {
					t.Fatalf("\t%s\tTest 0:\tShould report the new count: got %d exp %d", failed, count, i+1)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould report the new count on append.", success)

			drained := mp.Drain()
			if len(drained) != len(txs) {
				t.Fatalf("\t%s\tTest 0:\tShould drain every transaction: got %d exp %d", failed, len(drained), len(txs))
			}
			t.Logf("\t%s\tTest 0:\tShould drain every transaction.", success)

			for i, tx := range drained {
				if tx != txs[i] {
					t.Fatalf("\t%s\tTest 0:\tShould preserve submission order: got %v exp %v", failed, tx, txs[i])
				}
			}
			t.Logf("\t%s\tTest 0:\tShould preserve submission order.", success)

			if mp.Count() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the pool empty: got %d", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould leave the pool empty.", success)
		}

		t.Logf("\tTest 1:\tWhen copying the pool.")
		{
			mp := mempool.New()
			mp.Append(txs[0])

			cpy := mp.Copy()
			cpy[0].Amount = 99

			if mp.Copy()[0].Amount != txs[0].Amount {
				t.Fatalf("\t%s\tTest 1:\tShould not expose the internal pool.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould not expose the internal pool.", success)
		}
	}
}
