package peer_test

import (
	"errors"
	"testing"

	"github.com/chalkchain/chalkchain/foundation/ledger/peer"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_Parse(t *testing.T) {
	type table struct {
		name    string
		address string
		host    string
		err     error
	}

	tt := []table{
		{name: "full url", address: "http://192.168.0.5:5000", host: "192.168.0.5:5000"},
		{name: "schemeless", address: "192.168.0.5:5000", host: "192.168.0.5:5000"},
		{name: "hostname", address: "node1.internal:8080", host: "node1.internal:8080"},
		{name: "bare name", address: "node1", host: "node1"},
		{name: "url with path", address: "http://node1:8080/ignored", host: "node1:8080"},
		{name: "empty", address: "", err: peer.ErrInvalidAddress},
		{name: "scheme only", address: "http://", err: peer.ErrInvalidAddress},
	}

	t.Log("Given the need to parse peer registration addresses.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen parsing %q.", testID, tst.address)
			{
				f := func(t *testing.T) {
					pr, err := peer.Parse(tst.address)

					if tst.err != nil {
						if !errors.Is(err, tst.err) {
							t.Fatalf("\t%s\tTest %d:\tShould reject the address: got %v", failed, testID, err)
						}
						t.Logf("\t%s\tTest %d:\tShould reject the address.", success, testID)
						return
					}

					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould accept the address: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould accept the address.", success, testID)

					if pr.Host != tst.host {
						t.Fatalf("\t%s\tTest %d:\tShould reduce to the host: got %q exp %q", failed, testID, pr.Host, tst.host)
					}
					t.Logf("\t%s\tTest %d:\tShould reduce to the host.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_Set(t *testing.T) {
	t.Log("Given the need to manage a set of known peers.")
	{
		t.Logf("\tTest 0:\tWhen adding peers to the set.")
		{
			ps := peer.NewSet()

			if !ps.Add(peer.New("192.168.0.5:5000")) {
				t.Fatalf("\t%s\tTest 0:\tShould report a new peer as added.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould report a new peer as added.", success)

			if ps.Add(peer.New("192.168.0.5:5000")) {
				t.Fatalf("\t%s\tTest 0:\tShould not add a duplicate peer.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not add a duplicate peer.", success)

			if ps.Count() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould have one peer in the set: got %d", failed, ps.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould have one peer in the set.", success)
		}

		t.Logf("\tTest 1:\tWhen copying the set.")
		{
			ps := peer.NewSet()
			ps.Add(peer.New("hostA:9080"))
			ps.Add(peer.New("hostB:9080"))

			peers := ps.Copy("hostA:9080")

			if len(peers) != 1 || peers[0].Host != "hostB:9080" {
				t.Fatalf("\t%s\tTest 1:\tShould exclude the specified host: got %v", failed, peers)
			}
			t.Logf("\t%s\tTest 1:\tShould exclude the specified host.", success)
		}
	}
}
