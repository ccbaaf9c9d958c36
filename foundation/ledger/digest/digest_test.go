package digest_test

import (
	"testing"

	"github.com/chalkchain/chalkchain/foundation/ledger/digest"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Hash(t *testing.T) {
	type ab struct {
		A string  `json:"a"`
		B float64 `json:"b"`
	}

	type ba struct {
		B float64 `json:"b"`
		A string  `json:"a"`
	}

	t.Log("Given the need to produce canonical digests.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same value twice.")
		{
			v := ab{A: "chalk", B: 42}

			h1 := digest.Hash(v)
			h2 := digest.Hash(v)

			if h1 != h2 {
				t.Fatalf("\t%s\tTest 0:\tShould produce the same digest: got %s exp %s", failed, h2, h1)
			}
			t.Logf("\t%s\tTest 0:\tShould produce the same digest.", success)

			if len(h1) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould produce a 64 character hex digest: got %d", failed, len(h1))
			}
			t.Logf("\t%s\tTest 0:\tShould produce a 64 character hex digest.", success)
		}

		t.Logf("\tTest 1:\tWhen hashing values with permuted field declarations.")
		{
			h1 := digest.Hash(ab{A: "chalk", B: 42})
			h2 := digest.Hash(ba{B: 42, A: "chalk"})

			if h1 != h2 {
				t.Fatalf("\t%s\tTest 1:\tShould not depend on field declaration order: got %s exp %s", failed, h2, h1)
			}
			t.Logf("\t%s\tTest 1:\tShould not depend on field declaration order.", success)
		}

		t.Logf("\tTest 2:\tWhen hashing different values.")
		{
			h1 := digest.Hash(ab{A: "chalk", B: 42})
			h2 := digest.Hash(ab{A: "chalk", B: 43})

			if h1 == h2 {
				t.Fatalf("\t%s\tTest 2:\tShould produce different digests for different values.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould produce different digests for different values.", success)
		}
	}
}
