package block

// IsValid reports whether the specified chain holds together. For every
// adjacent pair of blocks the later block's previous hash must equal the
// digest of the earlier block, and the later block's proof must solve the
// puzzle against the earlier block. Timestamps, index contiguity, and
// transaction content are deliberately not part of the validity contract.
func IsValid(chain []Block) bool {
	if len(chain) < 1 {
		return false
	}

	for i := 1; i < len(chain); i++ {
		lastHash := chain[i-1].Hash()

		if chain[i].PrevHash != lastHash {
			return false
		}

		if !ValidProof(chain[i-1].Proof, chain[i].Proof, lastHash) {
			return false
		}
	}

	return true
}
