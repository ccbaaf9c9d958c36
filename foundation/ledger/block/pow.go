package block

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// difficultyPrefix is the fixed difficulty for the proof of work puzzle. The
// first four hex characters of the guess digest must all be zero. There is no
// retargeting; expected work is geometric with a mean of 16^4 evaluations.
const difficultyPrefix = "0000"

// cancelCheckInterval sets how many candidates are tried between checks of
// the context. Checking on every iteration roughly doubles the cost of the
// search for no benefit.
const cancelCheckInterval = 4096

// ValidProof reports whether the candidate proof solves the puzzle for the
// previous block's proof and hash. The guess is the text concatenation of the
// three values, and its SHA-256 hex digest must carry the difficulty prefix.
func ValidProof(lastProof uint64, proof uint64, lastHash string) bool {
	guess := fmt.Sprintf("%d%d%s", lastProof, proof, lastHash)
	guessHash := sha256.Sum256([]byte(guess))

	return hex.EncodeToString(guessHash[:])[:len(difficultyPrefix)] == difficultyPrefix
}

// FindProof performs the brute force search for the next proof, starting
// from candidate 0 and returning the first candidate that satisfies
// ValidProof. The search is CPU bound and unbounded, so it honors context
// cancellation between batches of candidates.
func FindProof(ctx context.Context, last Block) (uint64, error) {
	lastProof := last.Proof
	lastHash := last.Hash()

	for proof := uint64(0); ; proof++ {
		if proof%cancelCheckInterval == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}

		if ValidProof(lastProof, proof, lastHash) {
			return proof, nil
		}
	}
}
