package state

import (
	"github.com/chalkchain/chalkchain/foundation/ledger/block"
)

// SubmitTransaction adds a transaction to the pending pool and returns the
// index of the block that will eventually hold it. No block is created here;
// the transaction waits for the next mine. Amount sign, address format, and
// double spends are not validated, claims are all this ledger carries.
func (s *State) SubmitTransaction(tx block.Tx) (uint64, error) {
	count := s.mempool.Append(tx)

	last, err := s.LastBlock()
	if err != nil {
		return 0, err
	}

	s.evHandler("state: SubmitTransaction: tx[%s] pool[%d] block[%d]", tx, count, last.Index+1)

	return last.Index + 1, nil
}

// SealBlock atomically drains the pending pool into a new block, chains it to
// the previous block, and appends it. When the caller passes an empty
// previous hash the digest of the current last block is used.
func (s *State) SealBlock(proof uint64, prevHash string) (block.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chain) == 0 {
		return block.Block{}, ErrEmptyChain
	}

	if prevHash == "" {
		prevHash = s.chain[len(s.chain)-1].Hash()
	}

	b := block.Block{
		Index:        uint64(len(s.chain)) + 1,
		Timestamp:    block.Now(),
		Transactions: s.mempool.Drain(),
		Proof:        proof,
		PrevHash:     prevHash,
	}

	s.chain = append(s.chain, b)

	s.evHandler("state: SealBlock: sealed block[%d] txs[%d] hash[%s]", b.Index, len(b.Transactions), b.Hash())

	return b, nil
}
