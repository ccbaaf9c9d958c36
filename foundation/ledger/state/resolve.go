package state

import (
	"context"

	"github.com/chalkchain/chalkchain/foundation/ledger/block"
)

// ResolveConflicts is the consensus algorithm. It asks every known peer for
// its chain and replaces the local chain with the longest valid one found,
// reporting whether a replacement happened. A peer must report a length
// strictly greater than the best candidate seen so far, starting from the
// local length, so equal length chains are never adopted. The winning
// candidate is checked once more against the live chain at swap time, since
// blocks mined during the scan may have outgrown it. Unreachable or
// erroring peers simply have no opinion. Peer iteration order is arbitrary;
// among equal longest peers the scan order decides, exactly as arbitrary as
// the set it came from.
func (s *State) ResolveConflicts(ctx context.Context) (bool, error) {
	s.evHandler("state: ResolveConflicts: started")
	defer s.evHandler("state: ResolveConflicts: completed")

	var newChain []block.Block
	maxLength := s.ChainLength()

	for _, pr := range s.RetrieveKnownPeers() {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		pc, err := s.NetRequestPeerChain(ctx, pr)
		if err != nil {
			s.evHandler("state: ResolveConflicts: peer[%s]: no opinion: %s", pr.Host, err)
			continue
		}

		if pc.Length <= maxLength {
			s.evHandler("state: ResolveConflicts: peer[%s]: length[%d] not longer than best[%d]", pr.Host, pc.Length, maxLength)
			continue
		}

		if !block.IsValid(pc.Chain) {
			s.evHandler("state: ResolveConflicts: peer[%s]: chain rejected: failed validation", pr.Host)
			continue
		}

		s.evHandler("state: ResolveConflicts: peer[%s]: new best candidate: length[%d]", pr.Host, pc.Length)

		maxLength = pc.Length
		newChain = pc.Chain
	}

	if newChain == nil {
		s.evHandler("state: ResolveConflicts: local chain is authoritative")
		return false, nil
	}

	// Serialize the swap against mining so a seal never lands between the
	// length check and the replacement.
	s.mineMu.Lock()
	defer s.mineMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// The local chain may have grown during the scan. Re-check against the
	// live chain, by actual candidate length this time, before replacing.
	if len(newChain) <= len(s.chain) {
		s.evHandler("state: ResolveConflicts: candidate length[%d] no longer beats local[%d]", len(newChain), len(s.chain))
		return false, nil
	}

	s.chain = newChain

	s.evHandler("state: ResolveConflicts: local chain replaced: length[%d]", len(newChain))

	return true, nil
}
