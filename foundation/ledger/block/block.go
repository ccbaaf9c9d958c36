// Package block implements the data model for the ledger: transactions,
// blocks, the proof of work puzzle, and chain validation.
package block

import (
	"time"

	"github.com/chalkchain/chalkchain/foundation/ledger/digest"
)

// Sentinel values for the genesis block. The genesis block is the only block
// whose previous hash and proof are not derived from an earlier block.
const (
	GenesisPrevHash = "1"
	GenesisProof    = 100
)

// Block represents one sealed step of the ledger. Blocks are immutable after
// creation; ownership of the sequence belongs to the state package. The JSON
// field names are part of the wire contract, a remote node must be able to
// recompute the identical digest from a serialized block.
type Block struct {
	Index        uint64  `json:"index"`
	Timestamp    float64 `json:"timestamp"`
	Transactions []Tx    `json:"transactions"`
	Proof        uint64  `json:"proof"`
	PrevHash     string  `json:"previous_hash"`
}

// Genesis constructs the first block of a chain. Only the previous hash and
// the proof are fixed sentinels, the timestamp is minted at construction so
// two nodes never share a genesis block.
func Genesis() Block {
	return Block{
		Index:        1,
		Timestamp:    Now(),
		Transactions: []Tx{},
		Proof:        GenesisProof,
		PrevHash:     GenesisPrevHash,
	}
}

// Now returns the current wall clock as fractional seconds since the epoch,
// the timestamp representation blocks carry.
func Now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// Hash returns the unique digest for the block.
func (b Block) Hash() string {
	return digest.Hash(b)
}
