package state

import (
	"context"

	"github.com/chalkchain/chalkchain/foundation/ledger/block"
)

// Mine performs the proof of work search against the current last block and
// seals a new block with everything pending in the pool plus the mining
// reward. Mining operations are serialized so no two seals ever interleave
// their view of the pending pool. The search honors context cancellation.
func (s *State) Mine(ctx context.Context) (block.Block, error) {
	s.mineMu.Lock()
	defer s.mineMu.Unlock()

	s.evHandler("state: Mine: MINING: started")
	defer s.evHandler("state: Mine: MINING: completed")

	last, err := s.LastBlock()
	if err != nil {
		return block.Block{}, err
	}

	proof, err := block.FindProof(ctx, last)
	if err != nil {
		return block.Block{}, err
	}

	s.evHandler("state: Mine: MINING: solved: proof[%d]", proof)

	// The reward for finding the proof. The sender "0" signifies that this
	// node has mined a new coin.
	s.mempool.Append(block.NewRewardTx(s.nodeID))

	return s.SealBlock(proof, last.Hash())
}
